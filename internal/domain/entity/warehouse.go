package entity

import "time"

// Warehouse representa un depósito donde se almacena inventario.
// El nombre se compara sin distinguir mayúsculas en la importación CSV.
type Warehouse struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
