package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obejashaundev/nissan-sales-server/internal/application/auth"
	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/application/report"
	"github.com/obejashaundev/nissan-sales-server/internal/application/usecase"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	RoleUC         *usecase.RoleUseCase
	CatalogUC      *usecase.CatalogUseCase
	SalesAdvisorUC *usecase.SalesAdvisorUseCase
	CustomerUC     *usecase.CustomerUseCase
	CommentUC      *usecase.CommentUseCase
	LeadReportUC   *report.LeadReportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Las rutas protegidas encadenan los
// guards en orden estricto: token → usuario activo → (opcional) nivel de rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Saludo (público)
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.Success(nil, "API de prospectos de venta"))
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/signup", authHandler.SignUp)
	api.Post("/signin", authHandler.SignIn)

	// Rutas protegidas (Bearer Token + usuario activo en cada petición)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), ActiveUserMiddleware(deps.UserUC))
	admin := RequireAdmin()
	master := RequireMaster()

	// Users (listado y alta: admin; borrado: solo MASTER)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC)
	users.Get("/", admin, userHandler.List)
	users.Post("/", admin, userHandler.Create)
	users.Delete("/:id/:isForced", master, userHandler.Delete)

	// Roles (solo MASTER)
	roles := protected.Group("/roles", master)
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", roleHandler.List)
	roles.Post("/", roleHandler.Create)
	roles.Delete("/:id/:isForced", roleHandler.Delete)

	// Catálogos de referencia (lectura: autenticado; alta y baja: admin)
	catalogRoutes(protected, admin, "/locations",
		NewCatalogHandler(deps.CatalogUC, entity.CatalogLocation, "sucursal"))
	catalogRoutes(protected, admin, "/carModels",
		NewCatalogHandler(deps.CatalogUC, entity.CatalogCarModel, "modelo"))
	catalogRoutes(protected, admin, "/advertisingMediums",
		NewCatalogHandler(deps.CatalogUC, entity.CatalogAdvertisingMedium, "medio publicitario"))

	// Sales advisors (admin)
	advisors := protected.Group("/salesAdvisor", admin)
	advisorHandler := NewSalesAdvisorHandler(deps.SalesAdvisorUC)
	advisors.Get("/", advisorHandler.List)
	advisors.Post("/", advisorHandler.Create)
	advisors.Delete("/:id/:isForced", advisorHandler.Delete)

	// Customers (lectura y alta: autenticado; reporte y borrado: admin)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.CommentUC, deps.LeadReportUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/report", admin, customerHandler.Report)
	customers.Get("/:id/comments", customerHandler.ListComments)
	customers.Post("/:id/comments", customerHandler.CreateComment)
	customers.Delete("/:id/:isForced", admin, customerHandler.Delete)
}

// catalogRoutes monta las rutas compartidas de un catálogo de referencia.
func catalogRoutes(group fiber.Router, admin fiber.Handler, prefix string, h *CatalogHandler) {
	g := group.Group(prefix)
	g.Get("/", h.List)
	g.Post("/", admin, h.Create)
	g.Delete("/:id/:isForced", admin, h.Delete)
}
