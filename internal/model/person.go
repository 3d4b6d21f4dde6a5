package model

import (
	"errors"
	"fmt"
)

// Gender as recorded in the profile file.
type Gender int

const (
	Others Gender = iota
	Male
	Female
)

// ParseGender maps "Male" and "Female"; every other value is Others.
func ParseGender(s string) Gender {
	switch s {
	case "Male":
		return Male
	case "Female":
		return Female
	default:
		return Others
	}
}

func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return "Others"
	}
}

// FitnessLevel describes how active the user is.
type FitnessLevel int

const (
	FitnessNone FitnessLevel = iota
	FitnessLow
	FitnessMedium
	FitnessHigh
	FitnessExtreme
)

var fitnessNames = [...]string{"None", "Low", "Medium", "High", "Extreme"}

// FitnessLevelFromInt maps the persisted value 1..5 to a level.
func FitnessLevelFromInt(i int) (FitnessLevel, bool) {
	if i < 1 || i > len(fitnessNames) {
		return FitnessNone, false
	}
	return FitnessLevel(i - 1), true
}

// Int is the inverse of FitnessLevelFromInt.
func (l FitnessLevel) Int() int { return int(l) + 1 }

func (l FitnessLevel) String() string {
	if l < FitnessNone || l > FitnessExtreme {
		return fmt.Sprintf("FitnessLevel(%d)", int(l))
	}
	return fitnessNames[l]
}

// Person is the user profile. Height is in centimeters, weights in kilograms.
type Person struct {
	Name           string
	Gender         Gender
	Age            int
	Height         int
	OriginalWeight int
	CurrentWeight  int
	TargetWeight   int
	FitnessLevel   FitnessLevel
}

// DefaultPerson is the profile of a fresh start.
func DefaultPerson() Person {
	return Person{Gender: Others, FitnessLevel: FitnessNone}
}

// BMI computes the body mass index from height and current weight.
func (p Person) BMI() (float64, error) {
	heightCm, weightKg := float64(p.Height), float64(p.CurrentWeight)
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

// BMICategory names the WHO weight category of bmi.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

func (p Person) String() string {
	name := p.Name
	if name == "" {
		name = "(not set)"
	}
	return fmt.Sprintf(`  Name: %s
  Gender: %s
  Age: %d
  Height: %d cm
  Original weight: %d kg
  Current weight: %d kg
  Target weight: %d kg
  Fitness level: %s`,
		name, p.Gender, p.Age, p.Height, p.OriginalWeight, p.CurrentWeight, p.TargetWeight, p.FitnessLevel)
}
