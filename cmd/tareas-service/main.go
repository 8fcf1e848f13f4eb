package main

import (
	"net/http"

	_ "github.com/KarpovAlexandrGo/tareas-service/docs" // Swagger spec registration
	"github.com/KarpovAlexandrGo/tareas-service/internal/app"
	"github.com/KarpovAlexandrGo/tareas-service/pkg/logger"
	"github.com/go-chi/chi"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title           Tareas Service API
// @version         1.0
// @description     Backend de seguimiento de tareas: creación, consulta, actualización y eliminación.

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	a, err := app.NewApp()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to initialize app")
	}

	a.Server.Handler = setupSwagger(a.Server.Handler)

	if err := a.Run(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to run app")
	}
}

// setupSwagger layers the Swagger UI route over the application handler.
func setupSwagger(handler http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Mount("/", handler)

	return r
}
