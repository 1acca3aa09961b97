package notificacao_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sistema-cobranca/console/internal/api"
	"github.com/sistema-cobranca/console/internal/notificacao"
)

func TestService_Listar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requester := api.NewMockRequester(ctrl)
	requester.EXPECT().
		Get(gomock.Any(), "/notificacoes/").
		Return([]byte(`{"results": [{"id": 1, "tipo_canal": "WHATSAPP", "tipo_regua": "D-3", "status_envio": "ENVIADO"}]}`), nil)

	svc := notificacao.NewService(requester)
	got, err := svc.Listar(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, notificacao.CanalWhatsApp, got[0].TipoCanal)
	assert.Equal(t, notificacao.ReguaTresDiasAntes, got[0].TipoRegua)
}

func TestService_EndpointsDedicados(t *testing.T) {
	tests := []struct {
		name    string
		chamada func(svc *notificacao.Service) ([]notificacao.Notificacao, error)
		path    string
	}{
		{
			name: "Enviadas",
			chamada: func(svc *notificacao.Service) ([]notificacao.Notificacao, error) {
				return svc.ListarEnviadas(context.Background())
			},
			path: "/notificacoes/enviadas/",
		},
		{
			name: "Agendadas",
			chamada: func(svc *notificacao.Service) ([]notificacao.Notificacao, error) {
				return svc.ListarAgendadas(context.Background())
			},
			path: "/notificacoes/agendadas/",
		},
		{
			name: "ComFalha",
			chamada: func(svc *notificacao.Service) ([]notificacao.Notificacao, error) {
				return svc.ListarComFalha(context.Background())
			},
			path: "/notificacoes/com_falha/",
		},
		{
			name: "PorStatus",
			chamada: func(svc *notificacao.Service) ([]notificacao.Notificacao, error) {
				return svc.ListarPorStatus(context.Background(), notificacao.StatusFalha)
			},
			path: "/notificacoes/?status=FALHA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			requester := api.NewMockRequester(ctrl)
			requester.EXPECT().
				Get(gomock.Any(), tt.path).
				Return([]byte(`[]`), nil)

			svc := notificacao.NewService(requester)
			got, err := tt.chamada(svc)

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestEnviadasUltimas24h(t *testing.T) {
	agora := time.Now()
	iso := func(t time.Time) string { return t.Format(time.RFC3339) }

	notificacoes := []notificacao.Notificacao{
		{StatusEnvio: notificacao.StatusEnviado, DataEnvioReal: iso(agora.Add(-1 * time.Hour))},
		{StatusEnvio: notificacao.StatusEnviado, DataEnvioReal: iso(agora.Add(-23 * time.Hour))},
		{StatusEnvio: notificacao.StatusEnviado, DataEnvioReal: iso(agora.Add(-25 * time.Hour))},
		{StatusEnvio: notificacao.StatusFalha, DataEnvioReal: iso(agora.Add(-1 * time.Hour))},
		{StatusEnvio: notificacao.StatusAgendado, DataAgendada: iso(agora.Add(2 * time.Hour))},
		{StatusEnvio: notificacao.StatusEnviado, DataEnvioReal: ""},
	}

	assert.Equal(t, 2, notificacao.EnviadasUltimas24h(notificacoes, agora))
}

func TestFiltrarPorCanal(t *testing.T) {
	notificacoes := []notificacao.Notificacao{
		{ID: 1, TipoCanal: notificacao.CanalEmail},
		{ID: 2, TipoCanal: notificacao.CanalWhatsApp},
		{ID: 3, TipoCanal: notificacao.CanalEmail},
	}

	got := notificacao.FiltrarPorCanal(notificacoes, notificacao.CanalEmail)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	// A lista original permanece intacta.
	assert.Len(t, notificacoes, 3)
}

func TestNotificacao_NomeCliente(t *testing.T) {
	assert.Equal(t, "Ana", notificacao.Notificacao{ClienteNome: "Ana"}.NomeCliente())
	assert.Equal(t, "Bruno", notificacao.Notificacao{CobrancaClienteNome: "Bruno"}.NomeCliente())
	assert.Equal(t, "-", notificacao.Notificacao{}.NomeCliente())
}

func TestRegua_Label(t *testing.T) {
	assert.Equal(t, "3 dias antes", notificacao.ReguaTresDiasAntes.Label())
	assert.Equal(t, "1 dia após", notificacao.ReguaUmDiaApos.Label())
	assert.Equal(t, "10 dias após", notificacao.ReguaDezDiasApos.Label())
	assert.Equal(t, "D+30", notificacao.Regua("D+30").Label())
}
