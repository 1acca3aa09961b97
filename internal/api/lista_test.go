package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sistema-cobranca/console/internal/api"
)

func TestDecodeLista(t *testing.T) {
	type item struct {
		ID int64 `json:"id"`
	}

	tests := []struct {
		name string
		data string
		want []item
	}{
		{name: "Envelope", data: `{"count": 2, "results": [{"id": 1}, {"id": 2}]}`, want: []item{{ID: 1}, {ID: 2}}},
		{name: "EnvelopeVazio", data: `{"count": 0, "results": []}`, want: []item{}},
		{name: "ArrayPuro", data: `[{"id": 1}, {"id": 2}]`, want: []item{{ID: 1}, {ID: 2}}},
		{name: "ObjetoSemResults", data: `{"detail": "x"}`, want: []item{}},
		{name: "Malformado", data: `nada disso`, want: []item{}},
		{name: "Null", data: `null`, want: []item{}},
		{name: "Numero", data: `42`, want: []item{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := api.DecodeLista[item]([]byte(tt.data))
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
