package routers

import (
	"patient-record-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.Home)
	router.Get("/about", patientController.About)
	router.Get("/healthz", patientController.Healthz)

	router.Get("/view", patientController.FindAll)
	router.Get("/patient/{id}", patientController.FindByID)
	router.Get("/sort", patientController.Sort)
	router.Post("/create", patientController.Create)
	router.Put("/edit/{id}", patientController.Update)
	router.Delete("/delete/{id}", patientController.Delete)
}
