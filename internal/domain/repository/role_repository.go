package repository

import "github.com/jhoicas/Deposito-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	GetByID(id string) (*entity.Role, error)
	List() ([]*entity.Role, error)
	Save(role *entity.Role) error
	Delete(id string) error
}
