package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/ledger"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

var _ repository.StockRepository = (*ledger.Ledger)(nil)

// Seed datos iniciales con los que arranca el proceso.
type Seed struct {
	Products   []entity.Product
	Warehouses []entity.Warehouse
	Stock      []entity.Stock
	Roles      []entity.Role
	Users      []entity.User
}

// Load reemplaza todo el estado por el seed en una sola transacción.
func (s *Store) Load(ctx context.Context, seed Seed) error {
	stock, err := ledger.FromEntries(seed.Stock)
	if err != nil {
		return err
	}
	return s.Run(ctx, func(uow repository.UnitOfWork) error {
		st := uow.(unitOfWork).st
		*st = state{
			products:   append([]entity.Product(nil), seed.Products...),
			warehouses: append([]entity.Warehouse(nil), seed.Warehouses...),
			stock:      stock,
		}
		for _, r := range seed.Roles {
			st.roles = append(st.roles, cloneRole(r))
		}
		st.users = append(st.users, seed.Users...)
		return nil
	})
}

// DefaultSeed catálogo de demostración de la consola: tres productos, dos depósitos
// y los roles Admin, Manager y Operator con un usuario cada uno.
func DefaultSeed(now time.Time) Seed {
	all := func(actions ...entity.Action) []entity.Action { return actions }
	const (
		c = entity.ActionCreate
		r = entity.ActionRead
		u = entity.ActionUpdate
		d = entity.ActionDelete
		e = entity.ActionExport
	)
	return Seed{
		Products: []entity.Product{
			{ID: "prod_1", SKU: "HDW-001", Name: "Heavy Duty Wrench", Price: decimal.RequireFromString("49.99"), CreatedAt: now, UpdatedAt: now},
			{ID: "prod_2", SKU: "PSS-002", Name: "Precision Screwdriver Set", Price: decimal.RequireFromString("24.50"), CreatedAt: now, UpdatedAt: now},
			{ID: "prod_3", SKU: "LED-003", Name: "LED Headlamp", Price: decimal.RequireFromString("35.00"), CreatedAt: now, UpdatedAt: now},
		},
		Warehouses: []entity.Warehouse{
			{ID: "wh_1", Name: "Main Distribution Center", CreatedAt: now, UpdatedAt: now},
			{ID: "wh_2", Name: "West Coast Hub", CreatedAt: now, UpdatedAt: now},
		},
		Stock: []entity.Stock{
			{ProductID: "prod_1", WarehouseID: "wh_1", Quantity: 150},
			{ProductID: "prod_2", WarehouseID: "wh_1", Quantity: 300},
			{ProductID: "prod_1", WarehouseID: "wh_2", Quantity: 75},
			{ProductID: "prod_3", WarehouseID: "wh_2", Quantity: 200},
		},
		Roles: []entity.Role{
			{ID: "role_admin", Name: "Admin", Permissions: []entity.Permission{
				{Module: entity.ModuleInventory, Actions: all(r, u, e)},
				{Module: entity.ModuleProducts, Actions: all(c, r, u, d)},
				{Module: entity.ModuleWarehouses, Actions: all(c, r, u, d)},
				{Module: entity.ModuleMovements, Actions: all(c, r)},
				{Module: entity.ModuleMovementHistory, Actions: all(r, d, e)},
				{Module: entity.ModuleAdmin, Actions: all(c, r, u, d)},
				{Module: entity.ModuleReports, Actions: all(r, e)},
				{Module: entity.ModuleImport, Actions: all(c)},
				{Module: entity.ModuleReset, Actions: all(d)},
			}},
			{ID: "role_manager", Name: "Manager", Permissions: []entity.Permission{
				{Module: entity.ModuleInventory, Actions: all(r, u, e)},
				{Module: entity.ModuleProducts, Actions: all(c, r, u)},
				{Module: entity.ModuleWarehouses, Actions: all(c, r, u)},
				{Module: entity.ModuleMovements, Actions: all(c, r)},
				{Module: entity.ModuleMovementHistory, Actions: all(r, e)},
				{Module: entity.ModuleReports, Actions: all(r, e)},
			}},
			{ID: "role_operator", Name: "Operator", Permissions: []entity.Permission{
				{Module: entity.ModuleInventory, Actions: all(r, e)},
				{Module: entity.ModuleMovements, Actions: all(c, r)},
				{Module: entity.ModuleMovementHistory, Actions: all(r, e)},
				{Module: entity.ModuleReports, Actions: all(r, e)},
			}},
		},
		Users: []entity.User{
			{ID: "user_1", Name: "Admin User", RoleID: "role_admin"},
			{ID: "user_2", Name: "Manager User", RoleID: "role_manager"},
			{ID: "user_3", Name: "Operator User", RoleID: "role_operator"},
		},
	}
}
