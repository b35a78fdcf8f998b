package routers

import (
	"patient-record-service/internal/app/config"
	"patient-record-service/internal/app/delivery/http/controllers"
	"patient-record-service/internal/app/delivery/http/middlewares"
	"patient-record-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *controllers.PatientController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimiter())

	router.Use(middlewares.ErrorHandler)

	router.NotFound(middlewares.RouteNotFound)
	router.MethodNotAllowed(middlewares.MethodNotAllowed)

	attachPatientRoutes(router, patientController)
}
