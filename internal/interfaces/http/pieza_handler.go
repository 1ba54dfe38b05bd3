package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postventa/garantias-api/internal/application/dto"
	"github.com/postventa/garantias-api/internal/application/usecase"
)

// PiezaHandler maneja las peticiones HTTP para Pieza (protegido).
type PiezaHandler struct {
	uc *usecase.PiezaUseCase
}

// NewPiezaHandler construye el handler.
func NewPiezaHandler(uc *usecase.PiezaUseCase) *PiezaHandler {
	return &PiezaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pieza
// @Tags         piezas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePiezaRequest  true  "Datos de la pieza"
// @Success      201   {object}  dto.PiezaResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/piezas [post]
func (h *PiezaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePiezaRequest
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
// @Summary      Obtener pieza por ID
// @Tags         piezas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la pieza"
// @Success      200  {object}  dto.PiezaResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/piezas/{id} [get]
func (h *PiezaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pieza no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar piezas visibles
// @Tags         piezas
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por nombre o código"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.PiezaListResponse
// @Router       /api/piezas [get]
func (h *PiezaHandler) List(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.List(c.Context(), GetUserID(c), c.Query("q"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pieza
// @Tags         piezas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la pieza"
// @Param        body  body  dto.UpdatePiezaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PiezaResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/piezas/{id} [put]
func (h *PiezaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePiezaRequest
	if resp := parseYValida(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pieza no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pieza
// @Tags         piezas
// @Security     Bearer
// @Param        id   path  string  true  "ID de la pieza"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/piezas/{id} [delete]
func (h *PiezaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
