package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/application/auth"
	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
)

// AuthHandler maneja el ingreso a la consola y las consultas de permisos.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	guard *access.Guard
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, guard *access.Guard) *AuthHandler {
	return &AuthHandler{uc: uc, guard: guard}
}

// Users godoc
// @Summary      Usuarios seleccionables en la pantalla de ingreso
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/auth/users [get]
func (h *AuthHandler) Users(c *fiber.Ctx) error {
	out, err := h.uc.LoginUsers(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Login godoc
// @Summary      Ingresar como un usuario
// @Description  La consola no maneja credenciales: el operador elige un usuario y recibe un token de sesión.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "user_id"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuario de la sesión y permisos resueltos
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Session(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CheckPermission godoc
// @Summary      Consultar un permiso
// @Description  Devuelve allowed=false (no un error) cuando el rol no incluye la acción.
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        module  query  string  true  "Módulo"
// @Param        action  query  string  true  "Acción"
// @Success      200  {object}  dto.PermissionCheckResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/permissions/check [get]
func (h *AuthHandler) CheckPermission(c *fiber.Ctx) error {
	module, okM := entity.ParseModule(c.Query("module"))
	action, okA := entity.ParseAction(c.Query("action"))
	if !okM || !okA {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "module o action inválidos"})
	}
	allowed, err := h.guard.HasPermission(c.UserContext(), GetUserID(c), module, action)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.PermissionCheckResponse{Module: string(module), Action: string(action), Allowed: allowed})
}
