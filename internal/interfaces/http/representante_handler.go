package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postventa/garantias-api/internal/application/dto"
	"github.com/postventa/garantias-api/internal/application/usecase"
)

// RepresentanteHandler maneja las peticiones HTTP para Representante (protegido).
type RepresentanteHandler struct {
	uc *usecase.RepresentanteUseCase
}

// NewRepresentanteHandler construye el handler.
func NewRepresentanteHandler(uc *usecase.RepresentanteUseCase) *RepresentanteHandler {
	return &RepresentanteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear representante
// @Tags         representantes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRepresentanteRequest  true  "Datos del representante"
// @Success      201   {object}  dto.RepresentanteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/representantes [post]
func (h *RepresentanteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRepresentanteRequest
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
// @Summary      Obtener representante por ID
// @Tags         representantes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del representante"
// @Success      200  {object}  dto.RepresentanteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/representantes/{id} [get]
func (h *RepresentanteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "representante no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar representantes visibles
// @Tags         representantes
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por nombre o email"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.RepresentanteListResponse
// @Router       /api/representantes [get]
func (h *RepresentanteHandler) List(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.List(c.Context(), GetUserID(c), c.Query("q"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar representante
// @Tags         representantes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del representante"
// @Param        body  body  dto.UpdateRepresentanteRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RepresentanteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/representantes/{id} [put]
func (h *RepresentanteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRepresentanteRequest
	if resp := parseYValida(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "representante no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar representante
// @Tags         representantes
// @Security     Bearer
// @Param        id   path  string  true  "ID del representante"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/representantes/{id} [delete]
func (h *RepresentanteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
