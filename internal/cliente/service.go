package cliente

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

func (s *Service) Listar(ctx context.Context) ([]Cliente, error) {
	data, err := s.api.Get(ctx, "/clientes/")
	if err != nil {
		return nil, err
	}

	return api.DecodeLista[Cliente](data), nil
}

func (s *Service) BuscarPorID(ctx context.Context, id int64) (*Cliente, error) {
	data, err := s.api.Get(ctx, fmt.Sprintf("/clientes/%d/", id))
	if err != nil {
		return nil, err
	}

	var c Cliente
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding cliente: %w", err)
	}

	return &c, nil
}

func (s *Service) Criar(ctx context.Context, params Params) (*Cliente, error) {
	data, err := s.api.Post(ctx, "/clientes/", params)
	if err != nil {
		return nil, err
	}

	var c Cliente
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding cliente: %w", err)
	}

	return &c, nil
}

func (s *Service) Atualizar(ctx context.Context, id int64, params Params) (*Cliente, error) {
	data, err := s.api.Patch(ctx, fmt.Sprintf("/clientes/%d/", id), params)
	if err != nil {
		return nil, err
	}

	var c Cliente
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding cliente: %w", err)
	}

	return &c, nil
}

func (s *Service) Deletar(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/clientes/%d/", id))
}
