package plano_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sistema-cobranca/console/internal/api"
	"github.com/sistema-cobranca/console/internal/plano"
)

func TestService_Listar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requester := api.NewMockRequester(ctrl)
	requester.EXPECT().
		Get(gomock.Any(), "/planos/").
		Return([]byte(`[{"id": 1, "nome_plano": "Essencial", "valor_base": "49.90", "periodicidade_meses": 1, "ativo": true}]`), nil)

	svc := plano.NewService(requester)
	got, err := svc.Listar(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Essencial", got[0].NomePlano)
	assert.True(t, got[0].ValorBase.Equal(decimal.RequireFromString("49.90")))
	assert.True(t, got[0].Ativo)
}

func TestPlano_PeriodicidadeLabel(t *testing.T) {
	tests := []struct {
		meses int
		want  string
	}{
		{meses: 1, want: "Mensal"},
		{meses: 3, want: "Trimestral"},
		{meses: 6, want: "Semestral"},
		{meses: 12, want: "Anual"},
		{meses: 4, want: "4 meses"},
	}

	for _, tt := range tests {
		p := plano.Plano{PeriodicidadeMeses: tt.meses}
		assert.Equal(t, tt.want, p.PeriodicidadeLabel())
	}
}
