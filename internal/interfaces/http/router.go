package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fruteria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FruitUC *usecase.FruitUseCase
}

// Router registra las rutas de la API: una por caso de uso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	fruits := api.Group("/fruits")
	fruitHandler := NewFruitHandler(deps.FruitUC)
	fruits.Post("/", fruitHandler.Create)
	fruits.Get("/:name", fruitHandler.Find)
	fruits.Post("/:name/store", fruitHandler.Store)
	fruits.Post("/:name/remove", fruitHandler.Remove)
	fruits.Put("/:name", fruitHandler.Update)
	fruits.Delete("/:name", fruitHandler.Delete)
}
