package cobranca_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sistema-cobranca/console/internal/api"
	"github.com/sistema-cobranca/console/internal/cobranca"
)

func TestService_Listar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requester := api.NewMockRequester(ctrl)
	requester.EXPECT().
		Get(gomock.Any(), "/cobrancas/").
		Return([]byte(`{"results": [
			{"id": 1, "cliente_nome": "Ana", "valor_total_devido": "149.90", "status_cobranca": "PENDENTE"},
			{"id": 2, "cliente_nome": "Bruno", "valor_total_devido": 80, "status_cobranca": "PAGO"}
		]}`), nil)

	svc := cobranca.NewService(requester)
	got, err := svc.Listar(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)

	// O DRF manda decimais como string; valores numéricos também precisam
	// entrar.
	assert.True(t, got[0].ValorTotalDevido.Equal(decimal.RequireFromString("149.90")))
	assert.True(t, got[1].ValorTotalDevido.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, cobranca.StatusPendente, got[0].Status)
}

func TestService_ListarAtrasadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requester := api.NewMockRequester(ctrl)
	requester.EXPECT().
		Get(gomock.Any(), "/cobrancas/atrasadas/").
		Return([]byte(`[{"id": 3, "status_cobranca": "ATRASADO"}]`), nil)

	svc := cobranca.NewService(requester)
	got, err := svc.ListarAtrasadas(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, cobranca.StatusAtrasado, got[0].Status)
}

func TestService_MarcarComoPago(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requester := api.NewMockRequester(ctrl)
	requester.EXPECT().
		Patch(gomock.Any(), "/cobrancas/5/marcar_pago/", nil).
		Return([]byte(`{"id": 5, "status_cobranca": "PAGO", "data_pagamento": "2024-03-05"}`), nil)

	svc := cobranca.NewService(requester)
	got, err := svc.MarcarComoPago(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, cobranca.StatusPago, got.Status)
	assert.Equal(t, "2024-03-05", got.DataPagamento)
}

// Ida e volta: marcar pago e reverter devolve a cobrança a PENDENTE via o
// patch genérico de campos, sem endpoint reverso dedicado.
func TestService_ReverterPagamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requester := api.NewMockRequester(ctrl)
	requester.EXPECT().
		Patch(gomock.Any(), "/cobrancas/5/marcar_pago/", nil).
		Return([]byte(`{"id": 5, "status_cobranca": "PAGO", "data_pagamento": "2024-03-05"}`), nil)
	requester.EXPECT().
		Patch(gomock.Any(), "/cobrancas/5/", map[string]any{
			"status_cobranca": cobranca.StatusPendente,
			"data_pagamento":  nil,
		}).
		Return([]byte(`{"id": 5, "status_cobranca": "PENDENTE", "data_pagamento": null}`), nil)

	svc := cobranca.NewService(requester)

	paga, err := svc.MarcarComoPago(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, cobranca.StatusPago, paga.Status)

	revertida, err := svc.ReverterPagamento(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, cobranca.StatusPendente, revertida.Status)
	assert.Empty(t, revertida.DataPagamento)
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Pago", cobranca.StatusPago.Label())
	assert.Equal(t, "Atrasado", cobranca.StatusAtrasado.Label())
	assert.Equal(t, "EM_DISPUTA", cobranca.Status("EM_DISPUTA").Label())
}
