package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sistema-cobranca/console/internal/brfmt"
	"github.com/sistema-cobranca/console/internal/cobranca"
	"github.com/sistema-cobranca/console/internal/dateutil"
)

// Lister é o recorte do serviço de cobranças que o export precisa.
type Lister interface {
	Listar(ctx context.Context) ([]cobranca.Cobranca, error)
}

// Service grava a listagem de cobranças em CSV para conferência fora do
// console (planilha, contabilidade).
type Service struct {
	cobrancas Lister
}

func NewService(cobrancas Lister) *Service {
	return &Service{cobrancas: cobrancas}
}

// Result descreve o arquivo produzido.
type Result struct {
	Path  string
	Total int
}

// Export busca a listagem atual e a escreve em um CSV nomeado com o
// instante da exportação, dentro de outputDir.
func (s *Service) Export(ctx context.Context, outputDir string) (*Result, error) {
	cobrancas, err := s.cobrancas.Listar(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cobranças: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	name := fmt.Sprintf("cobrancas_%s.csv", time.Now().Format("20060102_150405"))
	path := filepath.Join(outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := write(f, cobrancas); err != nil {
		return nil, err
	}

	return &Result{Path: path, Total: len(cobrancas)}, nil
}

func write(f *os.File, cobrancas []cobranca.Cobranca) error {
	w := csv.NewWriter(f)

	header := []string{"id", "cliente", "cpf", "referencia", "valor_devido", "vencimento", "pagamento", "status"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, c := range cobrancas {
		row := []string{
			fmt.Sprintf("%d", c.ID),
			c.ClienteNome,
			brfmt.CPF(c.ClienteCPF),
			c.Referencia,
			c.ValorTotalDevido.StringFixed(2),
			dateutil.FormatDate(c.DataVencimento),
			dateutil.FormatDate(c.DataPagamento),
			string(c.Status),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()

	return w.Error()
}
