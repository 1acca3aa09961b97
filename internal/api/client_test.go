package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistema-cobranca/console/internal/api"
)

func TestClient_Get(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clientes/", r.URL.Path)
		w.Write([]byte(`[{"id": 1}]`))
	}))
	defer ts.Close()

	client := api.NewClient(ts.URL)

	data, err := client.Get(context.Background(), "/clientes/")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 1}]`, string(data))
}

func TestClient_ValidationError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"email": ["Informe um endereço de e-mail válido."], "cpf": ["CPF inválido.", "outro"]}`))
	}))
	defer ts.Close()

	client := api.NewClient(ts.URL)

	_, err := client.Post(context.Background(), "/clientes/", map[string]string{"email": "x"})
	require.Error(t, err)

	var verr *api.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Informe um endereço de e-mail válido.", verr.Fields["email"])
	assert.Equal(t, "CPF inválido.", verr.Fields["cpf"])
}

func TestClient_ValidationErrorWithDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "dados inválidos", "nome": ["Este campo é obrigatório."]}`))
	}))
	defer ts.Close()

	client := api.NewClient(ts.URL)

	_, err := client.Post(context.Background(), "/clientes/", nil)

	var verr *api.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dados inválidos", verr.Message)
	assert.Equal(t, "Este campo é obrigatório.", verr.Fields["nome"])
}

func TestClient_BadRequestWithoutFieldErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "requisição malformada"}`))
	}))
	defer ts.Close()

	client := api.NewClient(ts.URL)

	_, err := client.Get(context.Background(), "/cobrancas/")
	require.Error(t, err)

	var verr *api.ValidationError
	assert.False(t, errors.As(err, &verr))
	assert.EqualError(t, err, "requisição malformada")
}

func TestClient_StatusFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantSub string
	}{
		{name: "NotFound", status: 404, body: `{"detail": "Not found."}`, wantSub: "endpoint não encontrado"},
		{name: "InternalError", status: 500, body: `boom`, wantSub: "erro interno do servidor"},
		{name: "Forbidden", status: 403, body: `{}`, wantSub: "acesso negado"},
		{name: "Unauthorized", status: 401, body: `{}`, wantSub: "não autorizado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			client := api.NewClient(ts.URL)

			_, err := client.Get(context.Background(), "/planos/")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantSub)

			var serr *api.StatusError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.status, serr.Status)
		})
	}
}

func TestClient_NotFoundMessageContainsURL(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	client := api.NewClient(ts.URL)

	_, err := client.Get(context.Background(), "/nada/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ts.URL+"/nada/")
}

func TestClient_MessagePriority(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "Detail", body: `{"detail": "a", "message": "b", "error": "c"}`, want: "a"},
		{name: "Message", body: `{"message": "b", "error": "c"}`, want: "b"},
		{name: "Error", body: `{"error": "c"}`, want: "c"},
		{name: "PlainString", body: `"texto puro"`, want: "texto puro"},
		{name: "FirstFieldList", body: `{"valor": ["valor inválido"]}`, want: "valor inválido"},
		{name: "Fallback", body: `{}`, want: "erro ao processar requisição"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			client := api.NewClient(ts.URL)

			_, err := client.Get(context.Background(), "/cobrancas/")
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := api.NewClient(ts.URL)

	_, err := client.Get(context.Background(), "/clientes/")
	require.Error(t, err)

	var nerr *api.NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Contains(t, err.Error(), "conexão")
}

func TestClient_Delete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client := api.NewClient(ts.URL)

	assert.NoError(t, client.Delete(context.Background(), "/clientes/3/"))
}
