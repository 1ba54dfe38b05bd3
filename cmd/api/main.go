package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/postventa/garantias-api/internal/application/auth"
	"github.com/postventa/garantias-api/internal/application/authz"
	"github.com/postventa/garantias-api/internal/application/usecase"
	infrapdf "github.com/postventa/garantias-api/internal/infrastructure/pdf"
	"github.com/postventa/garantias-api/internal/infrastructure/postgres"
	httpRouter "github.com/postventa/garantias-api/internal/interfaces/http"
	"github.com/postventa/garantias-api/pkg/config"
	"github.com/postventa/garantias-api/pkg/logger"
	"github.com/postventa/garantias-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	fabricanteRepo := postgres.NewFabricanteRepository(pool)
	marcaRepo := postgres.NewMarcaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	piezaRepo := postgres.NewPiezaRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	garantiaRepo := postgres.NewGarantiaRepository(pool)
	representanteRepo := postgres.NewRepresentanteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Servicio de autorización: alcance de tenant y predicados por recurso,
	// siempre contra la DB en vivo (sin caché de delegaciones ni roles).
	authzSvc := authz.NewService(fabricanteRepo, marcaRepo, productoRepo, piezaRepo, metrics.NewAuthz())

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, fabricanteRepo)
	fabricanteUC := usecase.NewFabricanteUseCase(fabricanteRepo, userRepo)
	marcaUC := usecase.NewMarcaUseCase(marcaRepo, productoRepo, authzSvc)
	productoUC := usecase.NewProductoUseCase(productoRepo, marcaRepo, authzSvc)
	piezaUC := usecase.NewPiezaUseCase(piezaRepo, authzSvc)
	inventarioUC := usecase.NewInventarioUseCase(inventarioRepo, productoRepo, piezaRepo, garantiaRepo, authzSvc)
	representanteUC := usecase.NewRepresentanteUseCase(representanteRepo, marcaRepo, authzSvc)

	// PDF: certificado de garantía
	pdfGenerator := infrapdf.NewMarotoCertificadoGenerator()
	garantiaUC := usecase.NewGarantiaUseCase(
		garantiaRepo, inventarioRepo, productoRepo, piezaRepo, fabricanteRepo,
		txRunner, pdfGenerator, authzSvc,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Garantias API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		UserUC:          userUC,
		FabricanteUC:    fabricanteUC,
		MarcaUC:         marcaUC,
		ProductoUC:      productoUC,
		PiezaUC:         piezaUC,
		InventarioUC:    inventarioUC,
		GarantiaUC:      garantiaUC,
		RepresentanteUC: representanteUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
