package api

import "encoding/json"

// DecodeLista aceita as duas formas de listagem do backend: o envelope
// paginado do DRF ({"results": [...]}) ou um array puro. Qualquer outra
// forma vira uma lista vazia, nunca nil.
func DecodeLista[T any](data []byte) []T {
	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Results != nil {
		return envelope.Results
	}

	var lista []T
	if err := json.Unmarshal(data, &lista); err == nil && lista != nil {
		return lista
	}

	return []T{}
}
