package exceptions

import (
	"fmt"
	"patient-record-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int          `json:"status_code"`
	Success       bool         `json:"success"`
	ClientMessage string       `json:"message"`
	Details       []FieldError `json:"details,omitempty"`
	DevMessage    string       `json:"dev_message,omitempty"`
	Locations     []Location   `json:"locations,omitempty"`
	cause         error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

// FieldError describes one violated constraint on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError wraps err into a CustomError. When err is already a
// CustomError its status and messages are kept and the caller location is
// appended, so the rendered error shows the path it travelled.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)

	if existing, ok := err.(*CustomError); ok {
		existing.Locations = append(existing.Locations, location)
		return existing
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}

	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
		cause:         err,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ErrFileLocationUnknown,
			Line:         0,
			FunctionName: constvars.ErrFunctionNameUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
