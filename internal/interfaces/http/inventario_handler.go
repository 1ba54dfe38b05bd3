package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postventa/garantias-api/internal/application/dto"
	"github.com/postventa/garantias-api/internal/application/usecase"
)

// InventarioHandler maneja las peticiones HTTP para InventarioItem (protegido).
type InventarioHandler struct {
	uc *usecase.InventarioUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *usecase.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar bien en inventario
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventarioRequest  true  "Datos del bien (exactamente uno de producto_id/pieza_id)"
// @Success      201   {object}  dto.InventarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/inventario [post]
func (h *InventarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventarioRequest
	if resp := parseYValida(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener bien por ID
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del bien"
// @Success      200  {object}  dto.InventarioResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [get]
func (h *InventarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "bien no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar bienes visibles
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por serial"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.InventarioListResponse
// @Router       /api/inventario [get]
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.List(c.Context(), GetUserID(c), c.Query("q"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar bien
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del bien"
// @Param        body  body  dto.UpdateInventarioRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.InventarioResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [put]
func (h *InventarioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventarioRequest
	if resp := parseYValida(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "bien no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar bien (bloqueado si tiene garantías)
// @Tags         inventario
// @Security     Bearer
// @Param        id   path  string  true  "ID del bien"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [delete]
func (h *InventarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
