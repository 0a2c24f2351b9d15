package repository

import "github.com/jhoicas/Deposito-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	List() ([]*entity.User, error)
	// ExistsWithRole informa si algún usuario referencia el rol.
	ExistsWithRole(roleID string) (bool, error)
	Save(user *entity.User) error
	Delete(id string) error
}
