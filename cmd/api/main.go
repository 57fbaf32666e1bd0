package main

import (
	"log"
	"os"

	"github.com/Nakul-Shivaraj/SmartPantry/internal/database"
	"github.com/Nakul-Shivaraj/SmartPantry/internal/handlers"
	"github.com/Nakul-Shivaraj/SmartPantry/internal/metrics"
	"github.com/Nakul-Shivaraj/SmartPantry/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment")
	}

	// Connect before the listener binds; a dead store means no server.
	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	items := repository.NewItemRepository(db)
	locations := repository.NewLocationRepository(db, items)

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(metrics.Middleware())

	app.Static("/public", "./public")
	app.Get("/metrics", metrics.Handler())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title": "SmartPantry",
		})
	})

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "Running", "message": "API Ready"})
	})

	api.Get("/items", handlers.GetItems(items))
	api.Post("/items", handlers.CreateItem(items))
	api.Put("/items/:id", handlers.UpdateItem(items))
	api.Delete("/items/:id", handlers.DeleteItem(items))

	api.Get("/locations", handlers.GetLocations(locations))
	api.Post("/locations", handlers.CreateLocation(locations))
	api.Put("/locations/:id", handlers.UpdateLocation(locations))
	api.Delete("/locations/:id", handlers.DeleteLocation(locations))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("SmartPantry server running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
