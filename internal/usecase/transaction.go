package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xavierca1/sua-pizza-api/internal/logger"
)

// Transaction executa passos em sequência e, se um falhar, desfaz os
// anteriores chamando suas compensações em ordem inversa. Não há garantia
// atômica entre coleções: uma compensação que falha só é logada.
type Transaction struct {
	steps []*step
}

type step struct {
	name           string
	fn             func(context.Context) error
	compensation   func(context.Context) error
	compensateName string
}

func NewTransaction() *Transaction {
	return &Transaction{}
}

func (t *Transaction) AddOperation(name string, fn func(context.Context) error) {
	t.steps = append(t.steps, &step{name: name, fn: fn})
}

// AddCompensation associa a compensação à última operação adicionada.
func (t *Transaction) AddCompensation(name string, fn func(context.Context) error) {
	if len(t.steps) == 0 {
		return
	}
	last := t.steps[len(t.steps)-1]
	last.compensateName = name
	last.compensation = fn
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, s := range t.steps {
		if err := s.fn(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("operation '%s' failed: %w (rolled back %d operations)", s.name, err, i)
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAt int) {
	// a requisição pode ter sido cancelada; a compensação precisa rodar mesmo assim
	ctx = context.WithoutCancel(ctx)

	for i := failedAt - 1; i >= 0; i-- {
		s := t.steps[i]
		if s.compensation == nil {
			continue
		}
		if err := s.compensation(ctx); err != nil {
			logger.Log.Warn("compensação falhou, risco de inconsistência",
				zap.String("compensation", s.compensateName),
				zap.String("operation", s.name),
				zap.Error(err),
			)
		}
	}
}
