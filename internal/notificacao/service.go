package notificacao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sistema-cobranca/console/internal/api"
	"github.com/sistema-cobranca/console/internal/dateutil"
)

type Service struct {
	api api.Requester
}

func NewService(requester api.Requester) *Service {
	return &Service{api: requester}
}

func (s *Service) Listar(ctx context.Context) ([]Notificacao, error) {
	return s.listar(ctx, "/notificacoes/")
}

// As três actions abaixo existem no backend e saem mais baratas que o
// filtro por query; a tela usa a dedicada quando o filtro bate com uma
// delas.
func (s *Service) ListarEnviadas(ctx context.Context) ([]Notificacao, error) {
	return s.listar(ctx, "/notificacoes/enviadas/")
}

func (s *Service) ListarAgendadas(ctx context.Context) ([]Notificacao, error) {
	return s.listar(ctx, "/notificacoes/agendadas/")
}

func (s *Service) ListarComFalha(ctx context.Context) ([]Notificacao, error) {
	return s.listar(ctx, "/notificacoes/com_falha/")
}

// ListarPorStatus é o fallback por query param para status sem action
// dedicada.
func (s *Service) ListarPorStatus(ctx context.Context, status Status) ([]Notificacao, error) {
	return s.listar(ctx, "/notificacoes/?status="+url.QueryEscape(string(status)))
}

func (s *Service) BuscarPorID(ctx context.Context, id int64) (*Notificacao, error) {
	data, err := s.api.Get(ctx, fmt.Sprintf("/notificacoes/%d/", id))
	if err != nil {
		return nil, err
	}

	var n Notificacao
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decoding notificação: %w", err)
	}

	return &n, nil
}

func (s *Service) listar(ctx context.Context, path string) ([]Notificacao, error) {
	data, err := s.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	return api.DecodeLista[Notificacao](data), nil
}

// EnviadasUltimas24h conta as notificações ENVIADO cujo envio real ocorreu
// nas últimas 24 horas.
func EnviadasUltimas24h(notificacoes []Notificacao, agora time.Time) int {
	corte := agora.Add(-24 * time.Hour)

	total := 0
	for _, n := range notificacoes {
		if n.StatusEnvio != StatusEnviado {
			continue
		}

		envio, ok := dateutil.ParseLocalDate(n.DataEnvioReal)
		if !ok {
			continue
		}

		if !envio.Before(corte) {
			total++
		}
	}

	return total
}

// FiltrarPorCanal devolve uma nova lista só com o canal pedido; a lista
// original não é tocada.
func FiltrarPorCanal(notificacoes []Notificacao, canal Canal) []Notificacao {
	filtradas := make([]Notificacao, 0, len(notificacoes))
	for _, n := range notificacoes {
		if n.TipoCanal == canal {
			filtradas = append(filtradas, n)
		}
	}

	return filtradas
}
