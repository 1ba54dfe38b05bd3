package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/postventa/garantias-api/internal/application/auth"
	"github.com/postventa/garantias-api/internal/application/usecase"
	"github.com/postventa/garantias-api/internal/domain/role"
	"github.com/postventa/garantias-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	UserUC          *usecase.UserUseCase
	FabricanteUC    *usecase.FabricanteUseCase
	MarcaUC         *usecase.MarcaUseCase
	ProductoUC      *usecase.ProductoUseCase
	PiezaUC         *usecase.PiezaUseCase
	InventarioUC    *usecase.InventarioUseCase
	GarantiaUC      *usecase.GarantiaUseCase
	RepresentanteUC *usecase.RepresentanteUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
//
// RequireRol es la puerta gruesa por ruta; dentro de cada use case las
// decisiones por recurso (dueño o alcance de tenant) consultan la DB en vivo.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin)
	users := protected.Group("/users", RequireRol(role.Admin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/roles", userHandler.UpdateRoles)
	users.Delete("/:id", userHandler.Delete)

	// Fabricantes (admin o apoderado)
	fabricantes := protected.Group("/fabricantes", RequireRol(role.Admin, role.Apoderado))
	fabricanteHandler := NewFabricanteHandler(deps.FabricanteUC)
	fabricantes.Post("/", fabricanteHandler.Create)
	fabricantes.Get("/", fabricanteHandler.List)
	fabricantes.Get("/:id", fabricanteHandler.GetByID)
	fabricantes.Put("/:id", fabricanteHandler.Update)
	fabricantes.Post("/:id/delegados", fabricanteHandler.AgregarDelegado)
	fabricantes.Delete("/:id/delegados/:userId", fabricanteHandler.QuitarDelegado)
	fabricantes.Delete("/:id", RequireRol(role.Admin), fabricanteHandler.Delete)

	// Marcas
	marcas := protected.Group("/marcas")
	marcaHandler := NewMarcaHandler(deps.MarcaUC)
	marcas.Post("/", marcaHandler.Create)
	marcas.Get("/", marcaHandler.List)
	marcas.Get("/:id", marcaHandler.GetByID)
	marcas.Put("/:id", marcaHandler.Update)
	marcas.Delete("/:id", marcaHandler.Delete)

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Piezas
	piezas := protected.Group("/piezas")
	piezaHandler := NewPiezaHandler(deps.PiezaUC)
	piezas.Post("/", piezaHandler.Create)
	piezas.Get("/", piezaHandler.List)
	piezas.Get("/:id", piezaHandler.GetByID)
	piezas.Put("/:id", piezaHandler.Update)
	piezas.Delete("/:id", piezaHandler.Delete)

	// Inventario
	inventario := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inventario.Post("/", inventarioHandler.Create)
	inventario.Get("/", inventarioHandler.List)
	inventario.Get("/:id", inventarioHandler.GetByID)
	inventario.Put("/:id", inventarioHandler.Update)
	inventario.Delete("/:id", inventarioHandler.Delete)

	// Garantías
	garantias := protected.Group("/garantias")
	garantiaHandler := NewGarantiaHandler(deps.GarantiaUC)
	garantias.Post("/", garantiaHandler.Crear)
	garantias.Get("/", garantiaHandler.List)
	garantias.Get("/:id", garantiaHandler.GetByID)
	garantias.Put("/:id/estado", garantiaHandler.CambiarEstado)
	garantias.Get("/:id/certificado", garantiaHandler.Certificado)

	// Representantes
	representantes := protected.Group("/representantes")
	representanteHandler := NewRepresentanteHandler(deps.RepresentanteUC)
	representantes.Post("/", representanteHandler.Create)
	representantes.Get("/", representanteHandler.List)
	representantes.Get("/:id", representanteHandler.GetByID)
	representantes.Put("/:id", representanteHandler.Update)
	representantes.Delete("/:id", representanteHandler.Delete)
}
