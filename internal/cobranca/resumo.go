package cobranca

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sistema-cobranca/console/internal/dateutil"
)

// Funções puras de agregação do dashboard. Trabalham sobre a lista já
// buscada; nenhuma delas transiciona estado.

// VencimentosProximos filtra cobranças em aberto com vencimento dentro da
// janela [hoje 00:00, hoje+7 dias 23:59:59]. Cobranças pagas, canceladas ou
// sem data ficam de fora.
func VencimentosProximos(cobrancas []Cobranca, agora time.Time) []Cobranca {
	hoje := dateutil.StartOfDay(agora)
	limite := hoje.AddDate(0, 0, 7).Add(24*time.Hour - time.Second)

	proximas := make([]Cobranca, 0)
	for _, c := range cobrancas {
		if c.Status == StatusPago || c.Status == StatusCancelado {
			continue
		}

		vencimento, ok := parseVencimento(c)
		if !ok {
			continue
		}

		if !vencimento.Before(hoje) && !vencimento.After(limite) {
			proximas = append(proximas, c)
		}
	}

	return proximas
}

// ReceitaPrevista soma o valor devido das cobranças PENDENTE e ATRASADO.
func ReceitaPrevista(cobrancas []Cobranca) decimal.Decimal {
	total := decimal.Zero
	for _, c := range cobrancas {
		if c.Status.EmAberto() {
			total = total.Add(c.ValorTotalDevido)
		}
	}

	return total
}

// SomaValores soma o valor devido de todas as cobranças da lista.
func SomaValores(cobrancas []Cobranca) decimal.Decimal {
	total := decimal.Zero
	for _, c := range cobrancas {
		total = total.Add(c.ValorTotalDevido)
	}

	return total
}

// ProximosVencimentos devolve as até n cobranças em aberto com vencimento
// de hoje em diante, ordenadas da mais próxima para a mais distante.
func ProximosVencimentos(cobrancas []Cobranca, agora time.Time, n int) []Cobranca {
	hoje := dateutil.StartOfDay(agora)

	type entrada struct {
		cobranca   Cobranca
		vencimento time.Time
	}

	entradas := make([]entrada, 0)
	for _, c := range cobrancas {
		if c.Status == StatusPago || c.Status == StatusCancelado {
			continue
		}

		vencimento, ok := parseVencimento(c)
		if !ok || vencimento.Before(hoje) {
			continue
		}

		entradas = append(entradas, entrada{cobranca: c, vencimento: vencimento})
	}

	sort.SliceStable(entradas, func(i, j int) bool {
		return entradas[i].vencimento.Before(entradas[j].vencimento)
	})

	if len(entradas) > n {
		entradas = entradas[:n]
	}

	proximas := make([]Cobranca, len(entradas))
	for i, e := range entradas {
		proximas[i] = e.cobranca
	}

	return proximas
}

func parseVencimento(c Cobranca) (time.Time, bool) {
	vencimento, ok := dateutil.ParseLocalDate(c.DataVencimento)
	if !ok {
		return time.Time{}, false
	}

	// Vencimento é data de calendário; um eventual componente de hora é
	// irrelevante para a janela.
	return dateutil.StartOfDay(vencimento), true
}
