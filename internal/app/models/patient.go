package models

import (
	"math"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/dto/requests"
	"patient-record-service/internal/pkg/dto/responses"
)

// Patient is the stored form of a record. BMI and category are derived on
// demand and never persisted.
type Patient struct {
	ID     int     `json:"id" bson:"id"`
	Name   string  `json:"name" bson:"name"`
	City   string  `json:"city" bson:"city"`
	Age    int     `json:"age" bson:"age"`
	Gender string  `json:"gender" bson:"gender"`
	Height float64 `json:"height" bson:"height"`
	Weight float64 `json:"weight" bson:"weight"`
}

// BMI returns weight / (height in metres)^2 rounded to two decimals.
func (p Patient) BMI() float64 {
	heightInMeters := p.Height / 100
	if heightInMeters <= 0 {
		return 0
	}
	return roundTwoDecimals(p.Weight / (heightInMeters * heightInMeters))
}

func (p Patient) Category() string {
	return BMICategory(p.BMI())
}

// BMICategory buckets a bmi value. Each boundary belongs to the upper bucket.
func BMICategory(bmi float64) string {
	switch {
	case bmi < constvars.BMIUnderweightUpperBound:
		return constvars.BMICategoryUnderweight
	case bmi < constvars.BMIHealthyUpperBound:
		return constvars.BMICategoryHealthy
	case bmi < constvars.BMIOverweightUpperBound:
		return constvars.BMICategoryOverweight
	default:
		return constvars.BMICategoryObese
	}
}

// ApplyUpdate overwrites the fields present in request and leaves the rest,
// including the ID, untouched.
func (p *Patient) ApplyUpdate(request *requests.UpdatePatient) {
	if request == nil {
		return
	}
	if request.Name != nil {
		p.Name = *request.Name
	}
	if request.City != nil {
		p.City = *request.City
	}
	if request.Age != nil {
		p.Age = *request.Age
	}
	if request.Gender != nil {
		p.Gender = *request.Gender
	}
	if request.Height != nil {
		p.Height = *request.Height
	}
	if request.Weight != nil {
		p.Weight = *request.Weight
	}
}

func (p Patient) ConvertIntoResponse() responses.Patient {
	return responses.Patient{
		ID:       p.ID,
		Name:     p.Name,
		City:     p.City,
		Age:      p.Age,
		Gender:   p.Gender,
		Height:   p.Height,
		Weight:   p.Weight,
		BMI:      p.BMI(),
		Category: p.Category(),
	}
}

func NewPatientFromCreateRequest(request *requests.CreatePatient) Patient {
	return Patient{
		ID:     request.ID,
		Name:   request.Name,
		City:   request.City,
		Age:    request.Age,
		Gender: request.Gender,
		Height: request.Height,
		Weight: request.Weight,
	}
}

func roundTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
