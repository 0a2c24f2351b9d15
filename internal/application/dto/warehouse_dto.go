package dto

import "time"

// CreateWarehouseRequest entrada para crear un depósito.
type CreateWarehouseRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateWarehouseRequest entrada para actualizar un depósito.
type UpdateWarehouseRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
}

// WarehouseResponse salida de un depósito.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse lista de depósitos.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
}
