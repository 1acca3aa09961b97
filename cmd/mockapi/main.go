// mockapi é um backend de desenvolvimento em memória com os mesmos
// contratos do backend real: envelope {count, results} nas coleções,
// arrays nus nas actions e erros de validação por campo no formato do DRF.
// Serve para rodar o console sem o backend de verdade.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/shopspring/decimal"

	"github.com/sistema-cobranca/console/internal/cliente"
	"github.com/sistema-cobranca/console/internal/cobranca"
	"github.com/sistema-cobranca/console/internal/notificacao"
	"github.com/sistema-cobranca/console/internal/plano"
)

func main() {
	addr := flag.String("addr", ":8000", "endereço de escuta")
	flag.Parse()

	st := seed()

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Route("/clientes", func(r chi.Router) {
			r.Get("/", st.listClientes)
			r.Post("/", st.createCliente)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", st.getCliente)
				r.Patch("/", st.updateCliente)
				r.Delete("/", st.deleteCliente)
			})
		})

		r.Route("/cobrancas", func(r chi.Router) {
			r.Get("/", st.listCobrancas)
			r.Get("/atrasadas/", st.listAtrasadas)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", st.getCobranca)
				r.Patch("/", st.patchCobranca)
				r.Patch("/marcar_pago/", st.marcarPago)
			})
		})

		r.Route("/notificacoes", func(r chi.Router) {
			r.Get("/", st.listNotificacoes)
			r.Get("/enviadas/", st.listNotificacoesStatus(notificacao.StatusEnviado))
			r.Get("/agendadas/", st.listNotificacoesStatus(notificacao.StatusAgendado))
			r.Get("/com_falha/", st.listNotificacoesStatus(notificacao.StatusFalha))
			r.Get("/{id}/", st.getNotificacao)
		})

		r.Get("/planos/", st.listPlanos)
	})

	slog.Info("mockapi ouvindo", "addr", *addr)
	if err := http.ListenAndServe(*addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

type store struct {
	mu sync.Mutex

	clientes     []cliente.Cliente
	cobrancas    []cobranca.Cobranca
	notificacoes []notificacao.Notificacao
	planos       []plano.Plano

	nextClienteID int64
}

func seed() *store {
	hoje := time.Now()
	dia := func(offset int) string {
		return hoje.AddDate(0, 0, offset).Format(time.DateOnly)
	}

	planos := []plano.Plano{
		{ID: 1, NomePlano: "Essencial", ValorBase: decimal.RequireFromString("99.90"), PeriodicidadeMeses: 1, Ativo: true},
		{ID: 2, NomePlano: "Completo", ValorBase: decimal.RequireFromString("189.90"), PeriodicidadeMeses: 1, Ativo: true},
		{ID: 3, NomePlano: "Anual Essencial", ValorBase: decimal.RequireFromString("999.00"), PeriodicidadeMeses: 12, Ativo: false},
	}

	clientes := []cliente.Cliente{
		{ID: 1, Plano: 1, PlanoNome: "Essencial", Nome: "Maria Oliveira", CPF: "39053344705", TelefoneWhatsApp: "5521999991234", Email: "maria@example.com", DataInicioContrato: "2024-01-15", Status: cliente.StatusAtivo},
		{ID: 2, Plano: 2, PlanoNome: "Completo", Nome: "João Santos", CPF: "52998224725", TelefoneWhatsApp: "5511988887777", Email: "joao@example.com", DataInicioContrato: "2023-11-01", Status: cliente.StatusAtivo},
		{ID: 3, Plano: 1, PlanoNome: "Essencial", Nome: "Ana Costa", CPF: "11144477735", TelefoneWhatsApp: "5531977776666", Email: "ana@example.com", DataInicioContrato: "2024-03-10", Status: cliente.StatusInativoAtraso},
	}

	cobrancas := []cobranca.Cobranca{
		{ID: 1, Cliente: 1, ClienteNome: "Maria Oliveira", ClienteCPF: "39053344705", Referencia: "2026-08", ValorTotalDevido: decimal.RequireFromString("99.90"), DataVencimento: dia(2), Status: cobranca.StatusPendente},
		{ID: 2, Cliente: 2, ClienteNome: "João Santos", ClienteCPF: "52998224725", Referencia: "2026-08", ValorTotalDevido: decimal.RequireFromString("189.90"), DataVencimento: dia(5), Status: cobranca.StatusPendente},
		{ID: 3, Cliente: 3, ClienteNome: "Ana Costa", ClienteCPF: "11144477735", Referencia: "2026-07", ValorTotalDevido: decimal.RequireFromString("99.90"), DataVencimento: dia(-12), Status: cobranca.StatusAtrasado},
		{ID: 4, Cliente: 1, ClienteNome: "Maria Oliveira", ClienteCPF: "39053344705", Referencia: "2026-07", ValorTotalDevido: decimal.RequireFromString("99.90"), DataVencimento: dia(-30), DataPagamento: dia(-29), Status: cobranca.StatusPago},
		{ID: 5, Cliente: 2, ClienteNome: "João Santos", ClienteCPF: "52998224725", Referencia: "2026-06", ValorTotalDevido: decimal.RequireFromString("189.90"), DataVencimento: dia(-60), Status: cobranca.StatusCancelado},
	}

	agora := hoje.Format(time.RFC3339)
	notificacoes := []notificacao.Notificacao{
		{ID: 1, ClienteNome: "Maria Oliveira", ClienteEmail: "maria@example.com", CobrancaReferencia: "2026-08", CobrancaValor: decimal.RequireFromString("99.90"), CobrancaDataVencimento: dia(2), TipoRegua: notificacao.ReguaTresDiasAntes, TipoCanal: notificacao.CanalEmail, StatusEnvio: notificacao.StatusEnviado, DataEnvioReal: agora, ConteudoMensagem: "Olá Maria, sua mensalidade vence em 3 dias."},
		{ID: 2, ClienteNome: "Ana Costa", ClienteEmail: "ana@example.com", CobrancaReferencia: "2026-07", CobrancaValor: decimal.RequireFromString("99.90"), CobrancaDataVencimento: dia(-12), DiasEmAtraso: 12, TipoRegua: notificacao.ReguaDezDiasApos, TipoCanal: notificacao.CanalWhatsApp, StatusEnvio: notificacao.StatusFalha, DataAgendada: hoje.AddDate(0, 0, -2).Format(time.RFC3339), ConteudoMensagem: "Ana, identificamos uma pendência na sua assinatura."},
		{ID: 3, ClienteNome: "João Santos", ClienteEmail: "joao@example.com", CobrancaReferencia: "2026-08", CobrancaValor: decimal.RequireFromString("189.90"), CobrancaDataVencimento: dia(5), TipoRegua: notificacao.ReguaTresDiasAntes, TipoCanal: notificacao.CanalWhatsApp, StatusEnvio: notificacao.StatusAgendado, DataAgendada: hoje.AddDate(0, 0, 2).Format(time.RFC3339)},
	}

	return &store{
		clientes:      clientes,
		cobrancas:     cobrancas,
		notificacoes:  notificacoes,
		planos:        planos,
		nextClienteID: 4,
	}
}

// Respostas

type envelope struct {
	Count   int `json:"count"`
	Results any `json:"results"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeEnvelope(w http.ResponseWriter, count int, results any) {
	writeJSON(w, http.StatusOK, envelope{Count: count, Results: results})
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Não encontrado."})
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// Clientes

func (s *store) listClientes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]cliente.Cliente, len(s.clientes))
	copy(out, s.clientes)

	writeEnvelope(w, len(out), out)
}

func (s *store) getCliente(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	for _, c := range s.clientes {
		if c.ID == id {
			writeJSON(w, http.StatusOK, c)
			return
		}
	}

	notFound(w)
}

func (s *store) createCliente(w http.ResponseWriter, r *http.Request) {
	var p cliente.Params
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON inválido."})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if errs := s.validarCliente(p, 0); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	c := cliente.Cliente{
		ID:                 s.nextClienteID,
		Plano:              p.Plano,
		PlanoNome:          s.nomePlano(p.Plano),
		Nome:               p.Nome,
		CPF:                p.CPF,
		TelefoneWhatsApp:   p.TelefoneWhatsApp,
		Email:              p.Email,
		DataInicioContrato: p.DataInicioContrato,
		Status:             p.Status,
	}
	s.nextClienteID++
	s.clientes = append(s.clientes, c)

	writeJSON(w, http.StatusCreated, c)
}

func (s *store) updateCliente(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	var p cliente.Params
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON inválido."})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.clientes {
		if c.ID != id {
			continue
		}

		if errs := s.validarCliente(p, id); len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, errs)
			return
		}

		c.Plano = p.Plano
		c.PlanoNome = s.nomePlano(p.Plano)
		c.Nome = p.Nome
		c.CPF = p.CPF
		c.TelefoneWhatsApp = p.TelefoneWhatsApp
		c.Email = p.Email
		c.DataInicioContrato = p.DataInicioContrato
		c.Status = p.Status
		s.clientes[i] = c

		writeJSON(w, http.StatusOK, c)
		return
	}

	notFound(w)
}

func (s *store) deleteCliente(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.clientes {
		if c.ID == id {
			s.clientes = append(s.clientes[:i], s.clientes[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	notFound(w)
}

// validarCliente reproduz as mensagens de validação do backend, uma lista
// por campo. ignorarID exclui o próprio registro da checagem de CPF
// duplicado em atualizações.
func (s *store) validarCliente(p cliente.Params, ignorarID int64) map[string][]string {
	errs := make(map[string][]string)

	obrigatorios := map[string]string{
		"nome":                 p.Nome,
		"cpf":                  p.CPF,
		"email":                p.Email,
		"data_inicio_contrato": p.DataInicioContrato,
	}
	for campo, valor := range obrigatorios {
		if strings.TrimSpace(valor) == "" {
			errs[campo] = append(errs[campo], "Este campo é obrigatório.")
		}
	}

	if p.Plano == 0 {
		errs["plano"] = append(errs["plano"], "Este campo é obrigatório.")
	} else if s.nomePlano(p.Plano) == "" {
		errs["plano"] = append(errs["plano"], "Plano inválido.")
	}

	if p.CPF != "" && len(p.CPF) != 11 {
		errs["cpf"] = append(errs["cpf"], "CPF deve ter 11 dígitos.")
	}

	for _, c := range s.clientes {
		if c.ID != ignorarID && p.CPF != "" && c.CPF == p.CPF {
			errs["cpf"] = append(errs["cpf"], "cliente com este CPF já existe.")
			break
		}
	}

	if p.DataInicioContrato != "" {
		if _, err := time.Parse(time.DateOnly, p.DataInicioContrato); err != nil {
			errs["data_inicio_contrato"] = append(errs["data_inicio_contrato"],
				"Formato inválido para data. Use o formato AAAA-MM-DD.")
		}
	}

	return errs
}

func (s *store) nomePlano(id int64) string {
	for _, p := range s.planos {
		if p.ID == id {
			return p.NomePlano
		}
	}

	return ""
}

// Cobranças

func (s *store) listCobrancas(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]cobranca.Cobranca, len(s.cobrancas))
	copy(out, s.cobrancas)

	writeEnvelope(w, len(out), out)
}

func (s *store) listAtrasadas(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]cobranca.Cobranca, 0)
	for _, c := range s.cobrancas {
		if c.Status == cobranca.StatusAtrasado {
			out = append(out, c)
		}
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *store) getCobranca(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	for _, c := range s.cobrancas {
		if c.ID == id {
			writeJSON(w, http.StatusOK, c)
			return
		}
	}

	notFound(w)
}

func (s *store) marcarPago(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.cobrancas {
		if c.ID != id {
			continue
		}

		if !c.Status.EmAberto() {
			writeJSON(w, http.StatusBadRequest, map[string][]string{
				"status_cobranca": {"Só cobranças pendentes ou atrasadas podem ser marcadas como pagas."},
			})
			return
		}

		c.Status = cobranca.StatusPago
		c.DataPagamento = time.Now().Format(time.DateOnly)
		s.cobrancas[i] = c

		writeJSON(w, http.StatusOK, c)
		return
	}

	notFound(w)
}

// patchCobranca aceita o patch genérico de campos usado na reversão de
// pagamento: status_cobranca e data_pagamento (null limpa).
func (s *store) patchCobranca(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	var patch map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON inválido."})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.cobrancas {
		if c.ID != id {
			continue
		}

		if raw, ok := patch["status_cobranca"]; ok {
			var status cobranca.Status
			if err := json.Unmarshal(raw, &status); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string][]string{
					"status_cobranca": {"Valor inválido."},
				})
				return
			}
			c.Status = status
		}

		if raw, ok := patch["data_pagamento"]; ok {
			var data *string
			if err := json.Unmarshal(raw, &data); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string][]string{
					"data_pagamento": {"Valor inválido."},
				})
				return
			}
			if data == nil {
				c.DataPagamento = ""
			} else {
				c.DataPagamento = *data
			}
		}

		s.cobrancas[i] = c

		writeJSON(w, http.StatusOK, c)
		return
	}

	notFound(w)
}

// Notificações

func (s *store) listNotificacoes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]notificacao.Notificacao, 0, len(s.notificacoes))
	filtro := notificacao.Status(r.URL.Query().Get("status"))
	for _, n := range s.notificacoes {
		if filtro != "" && n.StatusEnvio != filtro {
			continue
		}
		out = append(out, n)
	}

	ordenarNotificacoes(out)
	writeEnvelope(w, len(out), out)
}

func (s *store) listNotificacoesStatus(status notificacao.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		out := make([]notificacao.Notificacao, 0)
		for _, n := range s.notificacoes {
			if n.StatusEnvio == status {
				out = append(out, n)
			}
		}

		ordenarNotificacoes(out)
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *store) getNotificacao(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	for _, n := range s.notificacoes {
		if n.ID == id {
			writeJSON(w, http.StatusOK, n)
			return
		}
	}

	notFound(w)
}

// Mais recentes primeiro, como o backend ordena o histórico.
func ordenarNotificacoes(ns []notificacao.Notificacao) {
	sort.SliceStable(ns, func(i, j int) bool {
		return ns[i].DataReferencia() > ns[j].DataReferencia()
	})
}

// Planos

func (s *store) listPlanos(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]plano.Plano, len(s.planos))
	copy(out, s.planos)

	writeEnvelope(w, len(out), out)
}
