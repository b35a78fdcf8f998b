package utils

import (
	"patient-record-service/internal/app/models"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/exceptions"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type fieldRule struct {
	field string
	value interface{}
	tag   string
}

func patientRules(patient models.Patient) []fieldRule {
	return []fieldRule{
		{field: "id", value: patient.ID, tag: "gt=0"},
		{field: "name", value: strings.TrimSpace(patient.Name), tag: "required"},
		{field: "age", value: patient.Age, tag: "gt=0"},
		{field: "gender", value: patient.Gender, tag: "oneof=" + strings.Join(constvars.AllowedGenders, " ")},
		{field: "height", value: patient.Height, tag: "gt=0"},
		{field: "weight", value: patient.Weight, tag: "gt=0"},
	}
}

// ValidatePatient checks every field rule and reports all violations at once.
func ValidatePatient(patient models.Patient) error {
	var details []exceptions.FieldError
	for _, rule := range patientRules(patient) {
		err := validate.Var(rule.value, rule.tag)
		details = append(details, exceptions.BuildFieldErrors(rule.field, err)...)
	}

	if len(details) > 0 {
		return exceptions.ErrPatientValidation(details)
	}
	return nil
}
