package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postventa/garantias-api/internal/application/dto"
	"github.com/postventa/garantias-api/internal/application/usecase"
)

// MarcaHandler maneja las peticiones HTTP para Marca (protegido).
type MarcaHandler struct {
	uc *usecase.MarcaUseCase
}

// NewMarcaHandler construye el handler.
func NewMarcaHandler(uc *usecase.MarcaUseCase) *MarcaHandler {
	return &MarcaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear marca
// @Tags         marcas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMarcaRequest  true  "Datos de la marca"
// @Success      201   {object}  dto.MarcaResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/marcas [post]
func (h *MarcaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMarcaRequest
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
// @Summary      Obtener marca por ID
// @Tags         marcas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la marca"
// @Success      200  {object}  dto.MarcaResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/marcas/{id} [get]
func (h *MarcaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "marca no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar marcas visibles
// @Tags         marcas
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por nombre"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.MarcaListResponse
// @Router       /api/marcas [get]
func (h *MarcaHandler) List(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.List(c.Context(), GetUserID(c), c.Query("q"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar marca
// @Tags         marcas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la marca"
// @Param        body  body  dto.UpdateMarcaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MarcaResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/marcas/{id} [put]
func (h *MarcaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMarcaRequest
	if resp := parseYValida(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "marca no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar marca (bloqueado si tiene productos)
// @Tags         marcas
// @Security     Bearer
// @Param        id   path  string  true  "ID de la marca"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/marcas/{id} [delete]
func (h *MarcaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
