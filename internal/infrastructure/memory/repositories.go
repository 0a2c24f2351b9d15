package memory

import (
	"slices"
	"strings"

	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository       = (*ProductRepo)(nil)
	_ repository.WarehouseRepository     = (*WarehouseRepo)(nil)
	_ repository.StockTransferRepository = (*StockTransferRepo)(nil)
	_ repository.RoleRepository          = (*RoleRepo)(nil)
	_ repository.UserRepository          = (*UserRepo)(nil)
)

// Los repositorios devuelven copias: modificar el resultado no altera el estado
// hasta que se llame a Save.

// ProductRepo implementación del puerto ProductRepository sobre una foto del store.
type ProductRepo struct{ st *state }

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	i := slices.IndexFunc(r.st.products, func(p entity.Product) bool { return p.ID == id })
	if i < 0 {
		return nil, nil
	}
	p := r.st.products[i]
	return &p, nil
}

// GetBySKU obtiene un producto por SKU sin distinguir mayúsculas.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	i := slices.IndexFunc(r.st.products, func(p entity.Product) bool { return strings.EqualFold(p.SKU, sku) })
	if i < 0 {
		return nil, nil
	}
	p := r.st.products[i]
	return &p, nil
}

// List lista productos en orden de alta.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.st.products))
	for _, p := range r.st.products {
		out = append(out, &p)
	}
	return out, nil
}

// Save crea o reemplaza un producto.
func (r *ProductRepo) Save(product *entity.Product) error {
	if product == nil || product.ID == "" {
		return domain.ErrInvalidInput
	}
	if i := slices.IndexFunc(r.st.products, func(p entity.Product) bool { return p.ID == product.ID }); i >= 0 {
		r.st.products[i] = *product
		return nil
	}
	r.st.products = append(r.st.products, *product)
	return nil
}

// Delete elimina un producto; ErrNotFound si no existe.
func (r *ProductRepo) Delete(id string) error {
	n := len(r.st.products)
	r.st.products = slices.DeleteFunc(r.st.products, func(p entity.Product) bool { return p.ID == id })
	if len(r.st.products) == n {
		return domain.ErrNotFound
	}
	return nil
}

// WarehouseRepo implementación del puerto WarehouseRepository sobre una foto del store.
type WarehouseRepo struct{ st *state }

// GetByID obtiene un depósito por ID.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	i := slices.IndexFunc(r.st.warehouses, func(w entity.Warehouse) bool { return w.ID == id })
	if i < 0 {
		return nil, nil
	}
	w := r.st.warehouses[i]
	return &w, nil
}

// GetByName obtiene un depósito por nombre sin distinguir mayúsculas.
func (r *WarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	i := slices.IndexFunc(r.st.warehouses, func(w entity.Warehouse) bool { return strings.EqualFold(w.Name, name) })
	if i < 0 {
		return nil, nil
	}
	w := r.st.warehouses[i]
	return &w, nil
}

// List lista depósitos en orden de alta.
func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(r.st.warehouses))
	for _, w := range r.st.warehouses {
		out = append(out, &w)
	}
	return out, nil
}

// Save crea o reemplaza un depósito.
func (r *WarehouseRepo) Save(warehouse *entity.Warehouse) error {
	if warehouse == nil || warehouse.ID == "" {
		return domain.ErrInvalidInput
	}
	if i := slices.IndexFunc(r.st.warehouses, func(w entity.Warehouse) bool { return w.ID == warehouse.ID }); i >= 0 {
		r.st.warehouses[i] = *warehouse
		return nil
	}
	r.st.warehouses = append(r.st.warehouses, *warehouse)
	return nil
}

// Delete elimina un depósito; ErrNotFound si no existe.
func (r *WarehouseRepo) Delete(id string) error {
	n := len(r.st.warehouses)
	r.st.warehouses = slices.DeleteFunc(r.st.warehouses, func(w entity.Warehouse) bool { return w.ID == id })
	if len(r.st.warehouses) == n {
		return domain.ErrNotFound
	}
	return nil
}

// StockTransferRepo historial de movimientos sobre una foto del store.
type StockTransferRepo struct{ st *state }

// Append agrega un movimiento al final del historial.
func (r *StockTransferRepo) Append(transfer *entity.StockTransfer) error {
	if transfer == nil || transfer.ID == "" {
		return domain.ErrInvalidInput
	}
	t := *transfer
	t.Items = slices.Clone(transfer.Items)
	r.st.transfers = append(r.st.transfers, t)
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockTransferRepo) GetByID(id string) (*entity.StockTransfer, error) {
	i := slices.IndexFunc(r.st.transfers, func(t entity.StockTransfer) bool { return t.ID == id })
	if i < 0 {
		return nil, nil
	}
	t := r.st.transfers[i]
	t.Items = slices.Clone(t.Items)
	return &t, nil
}

// List devuelve el historial del más reciente al más antiguo.
func (r *StockTransferRepo) List() ([]*entity.StockTransfer, error) {
	out := make([]*entity.StockTransfer, 0, len(r.st.transfers))
	for i := len(r.st.transfers) - 1; i >= 0; i-- {
		t := r.st.transfers[i]
		t.Items = slices.Clone(t.Items)
		out = append(out, &t)
	}
	return out, nil
}

// Delete quita el registro del historial; no toca el ledger.
func (r *StockTransferRepo) Delete(id string) error {
	n := len(r.st.transfers)
	r.st.transfers = slices.DeleteFunc(r.st.transfers, func(t entity.StockTransfer) bool { return t.ID == id })
	if len(r.st.transfers) == n {
		return domain.ErrNotFound
	}
	return nil
}

// Clear vacía el historial.
func (r *StockTransferRepo) Clear() error {
	r.st.transfers = nil
	return nil
}

// RoleRepo implementación del puerto RoleRepository sobre una foto del store.
type RoleRepo struct{ st *state }

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	i := slices.IndexFunc(r.st.roles, func(role entity.Role) bool { return role.ID == id })
	if i < 0 {
		return nil, nil
	}
	role := cloneRole(r.st.roles[i])
	return &role, nil
}

// List lista roles en orden de alta.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(r.st.roles))
	for _, role := range r.st.roles {
		c := cloneRole(role)
		out = append(out, &c)
	}
	return out, nil
}

// Save crea o reemplaza un rol.
func (r *RoleRepo) Save(role *entity.Role) error {
	if role == nil || role.ID == "" {
		return domain.ErrInvalidInput
	}
	c := cloneRole(*role)
	if i := slices.IndexFunc(r.st.roles, func(x entity.Role) bool { return x.ID == role.ID }); i >= 0 {
		r.st.roles[i] = c
		return nil
	}
	r.st.roles = append(r.st.roles, c)
	return nil
}

// Delete elimina un rol; ErrNotFound si no existe.
func (r *RoleRepo) Delete(id string) error {
	n := len(r.st.roles)
	r.st.roles = slices.DeleteFunc(r.st.roles, func(role entity.Role) bool { return role.ID == id })
	if len(r.st.roles) == n {
		return domain.ErrNotFound
	}
	return nil
}

// UserRepo implementación del puerto UserRepository sobre una foto del store.
type UserRepo struct{ st *state }

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	i := slices.IndexFunc(r.st.users, func(u entity.User) bool { return u.ID == id })
	if i < 0 {
		return nil, nil
	}
	u := r.st.users[i]
	return &u, nil
}

// List lista usuarios en orden de alta.
func (r *UserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.st.users))
	for _, u := range r.st.users {
		out = append(out, &u)
	}
	return out, nil
}

// ExistsWithRole informa si algún usuario referencia el rol.
func (r *UserRepo) ExistsWithRole(roleID string) (bool, error) {
	return slices.ContainsFunc(r.st.users, func(u entity.User) bool { return u.RoleID == roleID }), nil
}

// Save crea o reemplaza un usuario.
func (r *UserRepo) Save(user *entity.User) error {
	if user == nil || user.ID == "" {
		return domain.ErrInvalidInput
	}
	if i := slices.IndexFunc(r.st.users, func(u entity.User) bool { return u.ID == user.ID }); i >= 0 {
		r.st.users[i] = *user
		return nil
	}
	r.st.users = append(r.st.users, *user)
	return nil
}

// Delete elimina un usuario; ErrNotFound si no existe.
func (r *UserRepo) Delete(id string) error {
	n := len(r.st.users)
	r.st.users = slices.DeleteFunc(r.st.users, func(u entity.User) bool { return u.ID == id })
	if len(r.st.users) == n {
		return domain.ErrNotFound
	}
	return nil
}
