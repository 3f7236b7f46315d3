package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"blogserver/bootstrap"
	"blogserver/configs"
	"blogserver/database"
	_ "blogserver/docs"
	"blogserver/internal/middleware"
	"blogserver/internal/routes"
)

// @title       Blog API
// @version     1.0
// @description Blog backend: users, posts, comments and likes.
// @BasePath    /
func main() {
	cfg := configs.MustLoad()

	// --- MongoDB Connection ---
	client := database.Connect(cfg.MongoURI)
	defer database.Disconnect(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// --- Fiber App Setup ---
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	// Swagger docs
	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.JWT(cfg.JWTSecret))

	routes.Register(app, routes.Deps{
		DB:        db,
		JWTSecret: cfg.JWTSecret,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
