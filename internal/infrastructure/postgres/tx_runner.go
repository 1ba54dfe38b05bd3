package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/postventa/garantias-api/internal/application/usecase"
	"github.com/postventa/garantias-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción de pgx, con los
// repositorios de garantías e inventario atados a ella.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el ejecutor de transacciones sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre una transacción, invoca fn con repos transaccionales y confirma.
// Cualquier error del callback revierte todo.
func (t *TxRunner) Run(ctx context.Context, fn func(
	garantias repository.GarantiaRepository,
	inventario repository.InventarioRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewGarantiaRepository(tx), NewInventarioRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
