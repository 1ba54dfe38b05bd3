package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postventa/garantias-api/internal/application/dto"
	"github.com/postventa/garantias-api/internal/application/usecase"
)

// GarantiaHandler maneja las peticiones HTTP para Garantia (protegido).
type GarantiaHandler struct {
	uc *usecase.GarantiaUseCase
}

// NewGarantiaHandler construye el handler.
func NewGarantiaHandler(uc *usecase.GarantiaUseCase) *GarantiaHandler {
	return &GarantiaHandler{uc: uc}
}

// Crear godoc
// @Summary      Presentar reclamo de garantía
// @Tags         garantias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGarantiaRequest  true  "Datos del reclamo"
// @Success      201   {object}  dto.GarantiaResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/garantias [post]
func (h *GarantiaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CreateGarantiaRequest
	if resp := parseYValida(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.Crear(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener garantía por ID
// @Tags         garantias
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la garantía"
// @Success      200  {object}  dto.GarantiaResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/garantias/{id} [get]
func (h *GarantiaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "garantía no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar garantías visibles
// @Tags         garantias
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por descripción"
// @Param        estado  query  string  false  "Filtro de estado"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.GarantiaListResponse
// @Router       /api/garantias [get]
func (h *GarantiaHandler) List(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.List(c.Context(), GetUserID(c), c.Query("q"), c.Query("estado"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CambiarEstado godoc
// @Summary      Transicionar el estado de una garantía
// @Tags         garantias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la garantía"
// @Param        body  body  dto.CambiarEstadoGarantiaRequest  true  "Estado destino"
// @Success      200   {object}  dto.GarantiaResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/garantias/{id}/estado [put]
func (h *GarantiaHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoGarantiaRequest
	if resp := parseYValida(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.CambiarEstado(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "garantía no encontrada")
	}
	return c.JSON(out)
}

// Certificado godoc
// @Summary      Descargar el certificado PDF de una garantía aprobada
// @Tags         garantias
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la garantía"
// @Success      200  {file}  binary
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/garantias/{id}/certificado [get]
func (h *GarantiaHandler) Certificado(c *fiber.Ctx) error {
	pdf, err := h.uc.Certificado(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="certificado-garantia.pdf"`)
	return c.Send(pdf)
}
