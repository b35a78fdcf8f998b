package exceptions

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFieldErrors(t *testing.T) {
	validate := validator.New()

	t.Run("Greater Than Tag", func(t *testing.T) {
		fieldErrors := BuildFieldErrors("age", validate.Var(0, "gt=0"))

		require.Len(t, fieldErrors, 1)
		assert.Equal(t, "age", fieldErrors[0].Field)
		assert.Equal(t, "must be greater than 0", fieldErrors[0].Message)
	})

	t.Run("Oneof Tag Lists Allowed Values", func(t *testing.T) {
		fieldErrors := BuildFieldErrors("gender", validate.Var("robot", "oneof=male female others"))

		require.Len(t, fieldErrors, 1)
		assert.Equal(t, "must be one of [male, female, others]", fieldErrors[0].Message)
	})

	t.Run("Required Tag", func(t *testing.T) {
		fieldErrors := BuildFieldErrors("name", validate.Var("", "required"))

		require.Len(t, fieldErrors, 1)
		assert.Equal(t, "is required", fieldErrors[0].Message)
	})

	t.Run("Nil Error", func(t *testing.T) {
		assert.Nil(t, BuildFieldErrors("name", nil))
	})

	t.Run("Non Validator Error", func(t *testing.T) {
		fieldErrors := BuildFieldErrors("name", errors.New("boom"))

		require.Len(t, fieldErrors, 1)
		assert.Equal(t, "invalid input", fieldErrors[0].Message)
	})
}

func TestErrPatientValidation(t *testing.T) {
	details := []FieldError{
		{Field: "age", Message: "must be greater than 0"},
		{Field: "gender", Message: "must be one of [male, female, others]"},
	}

	customErr := ErrPatientValidation(details)

	assert.Equal(t, http.StatusUnprocessableEntity, customErr.StatusCode)
	assert.Equal(t, details, customErr.Details)
	assert.Contains(t, customErr.DevMessage, "age must be greater than 0, gender must be one of")
	require.Len(t, customErr.Locations, 1)
	assert.Contains(t, customErr.Locations[0].FunctionName, "TestErrPatientValidation")
}

func TestBuildNewCustomError_KeepsExistingError(t *testing.T) {
	notFound := ErrPatientNotFound(7)

	wrapped := ErrServerProcess(notFound)

	assert.Same(t, notFound, wrapped)
	assert.Equal(t, http.StatusNotFound, wrapped.StatusCode)
	assert.Len(t, wrapped.Locations, 2)
}

func TestErrInvalidSortField_NamesValueAndAllowedSet(t *testing.T) {
	customErr := ErrInvalidSortField("colour")

	assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, `Invalid sort field "colour", select from ['height', 'weight', 'bmi', 'age']`, customErr.ClientMessage)
	assert.Contains(t, customErr.DevMessage, `"colour"`)
}

func TestErrInvalidSortOrder_NamesValueAndAllowedSet(t *testing.T) {
	customErr := ErrInvalidSortOrder("sideways")

	assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, `Invalid sort order "sideways", select between ['asc', 'desc']`, customErr.ClientMessage)
}
