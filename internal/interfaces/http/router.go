package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	AuthUC    *auth.AuthUseCase
	Tokens    TokenParser
	// ProtectProductWrites exige token de admin en POST/PUT/PATCH/DELETE de productos.
	ProtectProductWrites bool
}

// NewApp crea la app Fiber con el manejador de errores JSON, request id/logging, recover y /health.
func NewApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: ErrorHandler,
	})
	app.Use(RequestLogger())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": name})
	})
	return app
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Products: lectura pública; escritura opcionalmente restringida a admin
	writeGuard := func(h fiber.Handler) []fiber.Handler {
		if !deps.ProtectProductWrites {
			return []fiber.Handler{h}
		}
		return []fiber.Handler{AuthMiddleware(deps.Tokens), RequireAdmin(), h}
	}
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", writeGuard(productHandler.Create)...)
	products.Put("/:id", writeGuard(productHandler.Update)...)
	products.Patch("/:id", writeGuard(productHandler.Update)...)
	products.Delete("/:id", writeGuard(productHandler.Delete)...)
}
