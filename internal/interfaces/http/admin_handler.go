package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/usecase"
)

// AdminHandler administración de roles, usuarios y reinicio de datos (protegido).
type AdminHandler struct {
	roles *usecase.RoleUseCase
	users *usecase.UserUseCase
	admin *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(roles *usecase.RoleUseCase, users *usecase.UserUseCase, admin *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{roles: roles, users: users, admin: admin}
}

// ListRoles godoc
// @Summary      Listar roles
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RoleListResponse
// @Router       /api/admin/roles [get]
func (h *AdminHandler) ListRoles(c *fiber.Ctx) error {
	out, err := h.roles.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateRole godoc
// @Summary      Crear rol
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveRoleRequest  true  "Nombre y permisos"
// @Success      201   {object}  dto.RoleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/roles [post]
func (h *AdminHandler) CreateRole(c *fiber.Ctx) error {
	var in dto.SaveRoleRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.roles.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateRole godoc
// @Summary      Actualizar rol
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del rol"
// @Param        body  body  dto.SaveRoleRequest  true  "Nombre y permisos"
// @Success      200   {object}  dto.RoleResponse
// @Router       /api/admin/roles/{id} [put]
func (h *AdminHandler) UpdateRole(c *fiber.Ctx) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	var in dto.SaveRoleRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.roles.Update(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteRole godoc
// @Summary      Eliminar rol
// @Description  Rechazado con 409 si algún usuario tiene el rol asignado.
// @Tags         admin
// @Security     Bearer
// @Param        id   path  string  true  "ID del rol"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/roles/{id} [delete]
func (h *AdminHandler) DeleteRole(c *fiber.Ctx) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	if err := h.roles.Delete(c.UserContext(), GetUserID(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.users.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateUser godoc
// @Summary      Crear usuario
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveUserRequest  true  "Nombre y rol"
// @Success      201   {object}  dto.UserResponse
// @Router       /api/admin/users [post]
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.SaveUserRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.users.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateUser godoc
// @Summary      Actualizar usuario
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.SaveUserRequest  true  "Nombre y rol"
// @Success      200   {object}  dto.UserResponse
// @Router       /api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	var in dto.SaveUserRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.users.Update(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Eliminar usuario
// @Description  Rechazado con 409 si es el usuario de la sesión.
// @Tags         admin
// @Security     Bearer
// @Param        id   path  string  true  "ID del usuario"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	if err := h.users.Delete(c.UserContext(), GetUserID(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reset godoc
// @Summary      Reiniciar datos de inventario
// @Description  Borra productos, depósitos, stock e historial. Roles y usuarios se conservan.
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/admin/reset [post]
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	if err := h.admin.ResetData(c.UserContext(), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "datos reiniciados"})
}
