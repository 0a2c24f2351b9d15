// Package memory implementa los puertos de persistencia en memoria. El Store es el
// único dueño del estado: cada transacción trabaja sobre una copia completa y la
// reemplaza de una sola vez, así ningún lector observa escrituras parciales.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/Deposito-api/internal/application/ports"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/ledger"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

var _ ports.TxRunner = (*Store)(nil)

// state foto completa de catálogos, ledger e historial.
type state struct {
	products   []entity.Product
	warehouses []entity.Warehouse
	stock      *ledger.Ledger
	transfers  []entity.StockTransfer
	roles      []entity.Role
	users      []entity.User
}

func newState() *state {
	return &state{stock: ledger.New()}
}

// clone copia profunda: la copia puede modificarse sin tocar el original.
func (s *state) clone() *state {
	c := &state{
		products:   slices.Clone(s.products),
		warehouses: slices.Clone(s.warehouses),
		stock:      s.stock.Clone(),
		transfers:  make([]entity.StockTransfer, len(s.transfers)),
		roles:      make([]entity.Role, len(s.roles)),
		users:      slices.Clone(s.users),
	}
	for i, t := range s.transfers {
		t.Items = slices.Clone(t.Items)
		c.transfers[i] = t
	}
	for i, r := range s.roles {
		c.roles[i] = cloneRole(r)
	}
	return c
}

func cloneRole(r entity.Role) entity.Role {
	perms := make([]entity.Permission, len(r.Permissions))
	for i, p := range r.Permissions {
		perms[i] = entity.Permission{Module: p.Module, Actions: slices.Clone(p.Actions)}
	}
	r.Permissions = perms
	return r
}

// uow ata los repositorios a esta foto.
func (s *state) uow() repository.UnitOfWork { return unitOfWork{st: s} }

type unitOfWork struct{ st *state }

func (u unitOfWork) Products() repository.ProductRepository          { return &ProductRepo{st: u.st} }
func (u unitOfWork) Warehouses() repository.WarehouseRepository      { return &WarehouseRepo{st: u.st} }
func (u unitOfWork) Stock() repository.StockRepository               { return u.st.stock }
func (u unitOfWork) Transfers() repository.StockTransferRepository   { return &StockTransferRepo{st: u.st} }
func (u unitOfWork) Roles() repository.RoleRepository                { return &RoleRepo{st: u.st} }
func (u unitOfWork) Users() repository.UserRepository                { return &UserRepo{st: u.st} }

// Store estado en memoria con un único escritor lógico.
type Store struct {
	mu      sync.RWMutex
	st      *state
	version uint64
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Run ejecuta fn sobre una copia de trabajo y la confirma solo si fn devuelve nil.
// Los escritores se serializan; fn no debe bloquear. El ctx solo se consulta antes
// de empezar: una transacción iniciada no se cancela.
func (s *Store) Run(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(work.uow()); err != nil {
		return err // la copia se descarta
	}
	s.st = work
	s.version++
	return nil
}

// View ejecuta fn sobre una foto inmutable del último estado confirmado.
// Lo que fn escriba en esa foto se descarta.
func (s *Store) View(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	snap := s.st.clone()
	s.mu.RUnlock()
	return fn(snap.uow())
}

// Version número de transacciones confirmadas desde la creación.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
