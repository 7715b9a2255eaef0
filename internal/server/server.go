package server

import (
	"log"

	"smepro-be/internal/bootstrap"
	"smepro-be/internal/config"
	"smepro-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, image payloads arrive base64-encoded
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api, serverutils.JwtMiddleware)
	c.UserController.RegisterRoutes(api, serverutils.JwtMiddleware)
	c.PlanController.RegisterRoutes(api, serverutils.JwtMiddleware)
	c.ChatController.RegisterRoutes(api, serverutils.JwtMiddleware)
	c.VaultController.RegisterRoutes(api, serverutils.JwtMiddleware)
	c.WorkbenchController.RegisterRoutes(api, serverutils.JwtMiddleware)
}
