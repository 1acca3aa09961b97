package plano

import (
	"context"

	"github.com/sistema-cobranca/console/internal/api"
)

type Service struct {
	api api.Requester
}

func NewService(requester api.Requester) *Service {
	return &Service{api: requester}
}

// Listar traz os planos ativos do catálogo.
func (s *Service) Listar(ctx context.Context) ([]Plano, error) {
	data, err := s.api.Get(ctx, "/planos/")
	if err != nil {
		return nil, err
	}

	return api.DecodeLista[Plano](data), nil
}
