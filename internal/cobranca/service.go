package cobranca

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sistema-cobranca/console/internal/api"
)

type Service struct {
	api api.Requester
}

func NewService(requester api.Requester) *Service {
	return &Service{api: requester}
}

func (s *Service) Listar(ctx context.Context) ([]Cobranca, error) {
	data, err := s.api.Get(ctx, "/cobrancas/")
	if err != nil {
		return nil, err
	}

	return api.DecodeLista[Cobranca](data), nil
}

// ListarAtrasadas usa a action dedicada do backend, que já conhece a régua
// de atraso; o console não recalcula atraso localmente.
func (s *Service) ListarAtrasadas(ctx context.Context) ([]Cobranca, error) {
	data, err := s.api.Get(ctx, "/cobrancas/atrasadas/")
	if err != nil {
		return nil, err
	}

	return api.DecodeLista[Cobranca](data), nil
}

func (s *Service) BuscarPorID(ctx context.Context, id int64) (*Cobranca, error) {
	data, err := s.api.Get(ctx, fmt.Sprintf("/cobrancas/%d/", id))
	if err != nil {
		return nil, err
	}

	var c Cobranca
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding cobrança: %w", err)
	}

	return &c, nil
}

// MarcarComoPago dispara a transição de estado no backend.
func (s *Service) MarcarComoPago(ctx context.Context, id int64) (*Cobranca, error) {
	data, err := s.api.Patch(ctx, fmt.Sprintf("/cobrancas/%d/marcar_pago/", id), nil)
	if err != nil {
		return nil, err
	}

	var c Cobranca
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding cobrança: %w", err)
	}

	return &c, nil
}

// ReverterPagamento volta a cobrança para PENDENTE. O backend não expõe uma
// action reversa; o contrato de fato é o patch genérico de campos.
func (s *Service) ReverterPagamento(ctx context.Context, id int64) (*Cobranca, error) {
	body := map[string]any{
		"status_cobranca": StatusPendente,
		"data_pagamento":  nil,
	}

	data, err := s.api.Patch(ctx, fmt.Sprintf("/cobrancas/%d/", id), body)
	if err != nil {
		return nil, err
	}

	var c Cobranca
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding cobrança: %w", err)
	}

	return &c, nil
}
