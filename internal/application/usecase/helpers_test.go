package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

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

func stockEntries(t *testing.T, s *memory.Store) int {
	t.Helper()
	var n int
	require.NoError(t, s.View(context.Background(), func(uow repository.UnitOfWork) error {
		n = len(uow.Stock().Entries())
		return nil
	}))
	return n
}
