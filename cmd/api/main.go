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
	"github.com/obejashaundev/nissan-sales-server/internal/application/auth"
	"github.com/obejashaundev/nissan-sales-server/internal/application/report"
	"github.com/obejashaundev/nissan-sales-server/internal/application/usecase"
	"github.com/obejashaundev/nissan-sales-server/internal/infrastructure/imagehost"
	infrapdf "github.com/obejashaundev/nissan-sales-server/internal/infrastructure/pdf"
	"github.com/obejashaundev/nissan-sales-server/internal/infrastructure/postgres"
	httpRouter "github.com/obejashaundev/nissan-sales-server/internal/interfaces/http"
	"github.com/obejashaundev/nissan-sales-server/pkg/config"
	"github.com/obejashaundev/nissan-sales-server/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	advisorRepo := postgres.NewSalesAdvisorRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	commentRepo := postgres.NewCustomerCommentRepository(pool)

	// Subida de avatares: deshabilitada si no hay host de imágenes configurado.
	var uploader auth.ImageUploader
	if cfg.ImageHost.BaseURL != "" {
		uploader = imagehost.NewClient(cfg.ImageHost.BaseURL, cfg.ImageHost.APIKey)
	}

	authUC := auth.NewAuthUseCase(userRepo, roleRepo, uploader, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.BcryptCost)

	userUC := usecase.NewUserUseCase(userRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	advisorUC := usecase.NewSalesAdvisorUseCase(advisorRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	commentUC := usecase.NewCommentUseCase(commentRepo, customerRepo)

	// PDF: listado de prospectos activos para la gerencia.
	pdfGenerator := infrapdf.NewMarotoLeadReportGenerator()
	leadReportUC := report.NewLeadReportUseCase(customerRepo, pdfGenerator)

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		RoleUC:         roleUC,
		CatalogUC:      catalogUC,
		SalesAdvisorUC: advisorUC,
		CustomerUC:     customerUC,
		CommentUC:      commentUC,
		LeadReportUC:   leadReportUC,
		JWTSecret:      cfg.JWT.Secret,
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
