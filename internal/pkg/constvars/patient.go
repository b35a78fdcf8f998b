package constvars

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOthers = "others"
)

const (
	BMICategoryUnderweight = "Underweight"
	BMICategoryHealthy     = "Healthy"
	BMICategoryOverweight  = "Overweight"
	BMICategoryObese       = "Obese"
)

const (
	BMIUnderweightUpperBound = 18.5
	BMIHealthyUpperBound     = 25.0
	BMIOverweightUpperBound  = 30.0
)

const (
	SortByHeight = "height"
	SortByWeight = "weight"
	SortByAge    = "age"
	SortByBMI    = "bmi"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

var (
	AllowedGenders    = []string{GenderMale, GenderFemale, GenderOthers}
	AllowedSortFields = []string{SortByHeight, SortByWeight, SortByBMI, SortByAge}
	AllowedSortOrders = []string{SortOrderAsc, SortOrderDesc}
)

const (
	EventPatientCreated = "patient.created"
	EventPatientUpdated = "patient.updated"
	EventPatientDeleted = "patient.deleted"
)
