package constvars

const (
	// Informational routes
	HomeMessage    = "Patient Management System API"
	AboutMessage   = "A fully functional API to manage your patient data"
	HealthzMessage = "ok"

	// Patient-related messages
	CreatePatientSuccessMessage = "Patient created successfully"
	UpdatePatientSuccessMessage = "Patient updated successfully"
	DeletePatientSuccessMessage = "Patient deleted successfully"
)
