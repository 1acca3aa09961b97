package cliente_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sistema-cobranca/console/internal/api"
	"github.com/sistema-cobranca/console/internal/cliente"
)

func TestService_Listar(t *testing.T) {
	type testCase struct {
		name     string
		resposta string
		wantLen  int
		wantNome string
	}

	tests := []testCase{
		{
			name:     "EnvelopePaginado",
			resposta: `{"count": 2, "next": null, "results": [{"id": 1, "nome": "Ana"}, {"id": 2, "nome": "Bruno"}]}`,
			wantLen:  2,
			wantNome: "Ana",
		},
		{
			name:     "ArrayPuro",
			resposta: `[{"id": 1, "nome": "Ana"}]`,
			wantLen:  1,
			wantNome: "Ana",
		},
		{
			name:     "FormaInesperada",
			resposta: `{"detail": "sem resultados"}`,
			wantLen:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			requester := api.NewMockRequester(ctrl)
			requester.EXPECT().
				Get(gomock.Any(), "/clientes/").
				Return([]byte(tt.resposta), nil)

			svc := cliente.NewService(requester)
			got, err := svc.Listar(context.Background())

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantNome, got[0].Nome)
			}
		})
	}
}

func TestService_Criar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	params := cliente.Params{
		Plano:              3,
		Nome:               "Ana Souza",
		CPF:                "123.456.789-01",
		TelefoneWhatsApp:   "5521999991234",
		Email:              "ana@example.com",
		DataInicioContrato: "2024-01-15",
		Status:             cliente.StatusAtivo,
	}

	requester := api.NewMockRequester(ctrl)
	requester.EXPECT().
		Post(gomock.Any(), "/clientes/", params).
		Return([]byte(`{"id": 7, "nome": "Ana Souza", "status_cliente": "ATIVO"}`), nil)

	svc := cliente.NewService(requester)
	got, err := svc.Criar(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, cliente.StatusAtivo, got.Status)
}

func TestService_Atualizar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	params := cliente.Params{Nome: "Ana S.", Status: cliente.StatusInativoManual}

	requester := api.NewMockRequester(ctrl)
	requester.EXPECT().
		Patch(gomock.Any(), "/clientes/7/", params).
		Return([]byte(`{"id": 7, "nome": "Ana S.", "status_cliente": "INATIVO_MANUAL"}`), nil)

	svc := cliente.NewService(requester)
	got, err := svc.Atualizar(context.Background(), 7, params)

	require.NoError(t, err)
	assert.Equal(t, cliente.StatusInativoManual, got.Status)
}

func TestService_Deletar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requester := api.NewMockRequester(ctrl)
	requester.EXPECT().
		Delete(gomock.Any(), "/clientes/7/").
		Return(nil)

	svc := cliente.NewService(requester)
	assert.NoError(t, svc.Deletar(context.Background(), 7))
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Ativo", cliente.StatusAtivo.Label())
	assert.Equal(t, "Inativo por Atraso", cliente.StatusInativoAtraso.Label())
	assert.Equal(t, "SUSPENSO", cliente.Status("SUSPENSO").Label())
}
