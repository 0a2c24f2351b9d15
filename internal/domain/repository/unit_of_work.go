package repository

// UnitOfWork agrupa los repositorios atados a una misma transacción (o a una lectura
// consistente). Todo lo escrito a través de ellos se confirma junto o se descarta junto.
type UnitOfWork interface {
	Products() ProductRepository
	Warehouses() WarehouseRepository
	Stock() StockRepository
	Transfers() StockTransferRepository
	Roles() RoleRepository
	Users() UserRepository
}
