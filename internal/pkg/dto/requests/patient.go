package requests

// CreatePatient is the payload of POST /create; it carries every stored field.
type CreatePatient struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// UpdatePatient is the payload of PUT /edit/{id}. A nil field was not sent
// and keeps its stored value.
type UpdatePatient struct {
	Name   *string  `json:"name,omitempty"`
	City   *string  `json:"city,omitempty"`
	Age    *int     `json:"age,omitempty"`
	Gender *string  `json:"gender,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

type SortPatients struct {
	SortBy string
	Order  string
}
