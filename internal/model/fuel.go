package model

import "fmt"

// FuelType is one of the fuel products tracked by the price tables.
// The string value is the token used in DynamoDB partition keys.
type FuelType string

const (
	FuelTypeUnleaded95 FuelType = "Unleaded95"
	FuelTypeDiesel     FuelType = "Diesel"
	FuelTypeOctane100  FuelType = "Octane100"
)

// FuelTypes lists every known fuel type in reporting order.
var FuelTypes = []FuelType{
	FuelTypeUnleaded95,
	FuelTypeDiesel,
	FuelTypeOctane100,
}

// ParseFuelType matches an exact partition key token.
func ParseFuelType(s string) (FuelType, bool) {
	switch FuelType(s) {
	case FuelTypeUnleaded95, FuelTypeDiesel, FuelTypeOctane100:
		return FuelType(s), true
	}
	return "", false
}

// Label is the upper-case name used in console reports.
func (f FuelType) Label() string {
	switch f {
	case FuelTypeUnleaded95:
		return "UNLEADED95"
	case FuelTypeDiesel:
		return "DIESEL"
	case FuelTypeOctane100:
		return "OCTANE100"
	default:
		return fmt.Sprintf("UNKNOWN(%s)", string(f))
	}
}

// OkItemNumber is the product number ("varenr") ok.dk uses for the fuel type.
func (f FuelType) OkItemNumber() int {
	switch f {
	case FuelTypeOctane100:
		return 533
	case FuelTypeDiesel:
		return 231
	default:
		return 536
	}
}

func (f FuelType) String() string { return string(f) }
