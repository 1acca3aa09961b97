package cobranca_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistema-cobranca/console/internal/cobranca"
)

var agora = time.Date(2024, 3, 5, 14, 30, 0, 0, time.Local)

func dia(offset int) string {
	return agora.AddDate(0, 0, offset).Format("2006-01-02")
}

func TestVencimentosProximos(t *testing.T) {
	cobrancas := []cobranca.Cobranca{
		{ID: 1, DataVencimento: dia(0), Status: cobranca.StatusPendente},
		{ID: 2, DataVencimento: dia(7), Status: cobranca.StatusPendente},
		{ID: 3, DataVencimento: dia(8), Status: cobranca.StatusPendente},
		{ID: 4, DataVencimento: dia(-1), Status: cobranca.StatusAtrasado},
		{ID: 5, DataVencimento: dia(1), Status: cobranca.StatusPago},
		{ID: 6, DataVencimento: dia(1), Status: cobranca.StatusCancelado},
		{ID: 7, DataVencimento: "", Status: cobranca.StatusPendente},
		{ID: 8, DataVencimento: dia(3), Status: cobranca.StatusAtrasado},
	}

	got := cobranca.VencimentosProximos(cobrancas, agora)

	ids := make([]int64, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.ID)
	}

	// Hoje e o sétimo dia entram; o oitavo, o vencido, a paga, a cancelada
	// e a sem data ficam de fora.
	assert.Equal(t, []int64{1, 2, 8}, ids)
}

func TestVencimentosProximos_LimiteDaJanela(t *testing.T) {
	exatos7 := []cobranca.Cobranca{{ID: 1, DataVencimento: dia(7), Status: cobranca.StatusPendente}}
	assert.Len(t, cobranca.VencimentosProximos(exatos7, agora), 1)

	alem := []cobranca.Cobranca{{ID: 1, DataVencimento: dia(8), Status: cobranca.StatusPendente}}
	assert.Empty(t, cobranca.VencimentosProximos(alem, agora))

	pagaAmanha := []cobranca.Cobranca{{ID: 1, DataVencimento: dia(1), Status: cobranca.StatusPago}}
	assert.Empty(t, cobranca.VencimentosProximos(pagaAmanha, agora))
}

func TestReceitaPrevista(t *testing.T) {
	cobrancas := []cobranca.Cobranca{
		{Status: cobranca.StatusPendente, ValorTotalDevido: decimal.RequireFromString("100.50")},
		{Status: cobranca.StatusAtrasado, ValorTotalDevido: decimal.RequireFromString("49.50")},
		{Status: cobranca.StatusPago, ValorTotalDevido: decimal.RequireFromString("999.99")},
		{Status: cobranca.StatusCancelado, ValorTotalDevido: decimal.RequireFromString("10.00")},
	}

	got := cobranca.ReceitaPrevista(cobrancas)
	assert.True(t, got.Equal(decimal.RequireFromString("150.00")), "got %s", got)
}

func TestSomaValores(t *testing.T) {
	cobrancas := []cobranca.Cobranca{
		{ValorTotalDevido: decimal.RequireFromString("10.10")},
		{ValorTotalDevido: decimal.RequireFromString("20.20")},
	}

	assert.True(t, cobranca.SomaValores(cobrancas).Equal(decimal.RequireFromString("30.30")))
	assert.True(t, cobranca.SomaValores(nil).Equal(decimal.Zero))
}

func TestProximosVencimentos(t *testing.T) {
	cobrancas := []cobranca.Cobranca{
		{ID: 1, DataVencimento: dia(30), Status: cobranca.StatusPendente},
		{ID: 2, DataVencimento: dia(2), Status: cobranca.StatusPendente},
		{ID: 3, DataVencimento: dia(-3), Status: cobranca.StatusAtrasado},
		{ID: 4, DataVencimento: dia(10), Status: cobranca.StatusPendente},
		{ID: 5, DataVencimento: dia(1), Status: cobranca.StatusPago},
		{ID: 6, DataVencimento: dia(0), Status: cobranca.StatusPendente},
		{ID: 7, DataVencimento: dia(5), Status: cobranca.StatusAtrasado},
	}

	got := cobranca.ProximosVencimentos(cobrancas, agora, 3)
	require.Len(t, got, 3)

	assert.Equal(t, int64(6), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(7), got[2].ID)
}

func TestProximosVencimentos_MenosQueOLimite(t *testing.T) {
	cobrancas := []cobranca.Cobranca{
		{ID: 1, DataVencimento: dia(4), Status: cobranca.StatusPendente},
	}

	got := cobranca.ProximosVencimentos(cobrancas, agora, 5)
	assert.Len(t, got, 1)
}
