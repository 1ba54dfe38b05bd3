package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postventa/garantias-api/internal/application/dto"
	"github.com/postventa/garantias-api/internal/application/usecase"
)

// FabricanteHandler maneja las peticiones HTTP para Fabricante (protegido).
type FabricanteHandler struct {
	uc *usecase.FabricanteUseCase
}

// NewFabricanteHandler construye el handler.
func NewFabricanteHandler(uc *usecase.FabricanteUseCase) *FabricanteHandler {
	return &FabricanteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fabricante
// @Tags         fabricantes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFabricanteRequest  true  "Datos del fabricante"
// @Success      201   {object}  dto.FabricanteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/fabricantes [post]
func (h *FabricanteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFabricanteRequest
	if resp := parseYValida(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.Create(c.Context(), GetClaims(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener fabricante por ID
// @Tags         fabricantes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del fabricante"
// @Success      200  {object}  dto.FabricanteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fabricantes/{id} [get]
func (h *FabricanteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetClaims(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "fabricante no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar fabricantes del alcance del llamador
// @Tags         fabricantes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.FabricanteListResponse
// @Router       /api/fabricantes [get]
func (h *FabricanteHandler) List(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.List(c.Context(), GetClaims(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar fabricante
// @Tags         fabricantes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del fabricante"
// @Param        body  body  dto.UpdateFabricanteRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.FabricanteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/fabricantes/{id} [put]
func (h *FabricanteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFabricanteRequest
	if resp := parseYValida(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.Update(c.Context(), GetClaims(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "fabricante no encontrado")
	}
	return c.JSON(out)
}

// AgregarDelegado godoc
// @Summary      Agregar administrador delegado
// @Tags         fabricantes
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del fabricante"
// @Param        body  body  dto.DelegadoRequest  true  "Usuario a delegar"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/fabricantes/{id}/delegados [post]
func (h *FabricanteHandler) AgregarDelegado(c *fiber.Ctx) error {
	var in dto.DelegadoRequest
	if resp := parseYValida(c, &in); resp != nil {
		return resp
	}
	if err := h.uc.AgregarDelegado(c.Context(), GetClaims(c), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// QuitarDelegado godoc
// @Summary      Quitar administrador delegado
// @Tags         fabricantes
// @Security     Bearer
// @Param        id       path  string  true  "ID del fabricante"
// @Param        userId   path  string  true  "ID del delegado"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/fabricantes/{id}/delegados/{userId} [delete]
func (h *FabricanteHandler) QuitarDelegado(c *fiber.Ctx) error {
	if err := h.uc.QuitarDelegado(c.Context(), GetClaims(c), c.Params("id"), c.Params("userId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar fabricante (admin)
// @Tags         fabricantes
// @Security     Bearer
// @Param        id   path  string  true  "ID del fabricante"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fabricantes/{id} [delete]
func (h *FabricanteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
