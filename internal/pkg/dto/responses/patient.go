package responses

type Patient struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

type PatientMutation struct {
	Message string  `json:"message"`
	Patient Patient `json:"patient"`
}
