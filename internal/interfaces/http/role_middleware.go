package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postventa/garantias-api/internal/application/dto"
	"github.com/postventa/garantias-api/internal/domain/role"
)

// RequireRol devuelve un middleware Fiber que exige que el llamador porte al
// menos uno de los roles indicados. Debe usarse DESPUÉS de AuthMiddleware.
//
// Es la puerta gruesa de RBAC por ruta; las decisiones finas por recurso
// (dueño o alcance de tenant) se toman en los use cases contra la DB en vivo.
//
// Comportamiento:
//   - 401 Unauthorized → el token no aportó ningún rol.
//   - 403 Forbidden    → hay roles pero ninguno de los exigidos.
func RequireRol(roles ...role.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tiene := GetRoles(c)
		if len(tiene) == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLES",
				Message: "el token no contiene roles",
			})
		}
		if !tiene.HasAny(roles...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "rol insuficiente para esta operación",
			})
		}
		return c.Next()
	}
}
