package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
	"github.com/jhoicas/Deposito-api/internal/infrastructure/memory"
)

const (
	adminID    = "user_1"
	managerID  = "user_2"
	operatorID = "user_3"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	require.NoError(t, s.Load(context.Background(), memory.DefaultSeed(time.Now())))
	return s
}

func qty(t *testing.T, s *memory.Store, productID, warehouseID string) int {
	t.Helper()
	var q int
	require.NoError(t, s.View(context.Background(), func(uow repository.UnitOfWork) error {
		q = uow.Stock().Quantity(productID, warehouseID)
		return nil
	}))
	return q
}

func snapshot(t *testing.T, s *memory.Store) []entity.Stock {
	t.Helper()
	var out []entity.Stock
	require.NoError(t, s.View(context.Background(), func(uow repository.UnitOfWork) error {
		out = uow.Stock().Entries()
		return nil
	}))
	return out
}

func createWarehouse(t *testing.T, s *memory.Store, id, name string) error {
	t.Helper()
	return s.Run(context.Background(), func(uow repository.UnitOfWork) error {
		return uow.Warehouses().Save(&entity.Warehouse{ID: id, Name: name})
	})
}

func totalUnits(entries []entity.Stock) int {
	total := 0
	for _, e := range entries {
		total += e.Quantity
	}
	return total
}

// spyMetrics registra las llamadas del caso de uso.
type spyMetrics struct {
	mu       sync.Mutex
	applied  int
	units    int
	rejected []string
	imports  int
	importRj []string
}

func (m *spyMetrics) TransferApplied(_, units int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applied++
	m.units += units
}

func (m *spyMetrics) TransferRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected = append(m.rejected, reason)
}

func (m *spyMetrics) ImportCompleted(_, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.imports++
}

func (m *spyMetrics) ImportRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.importRj = append(m.importRj, reason)
}
