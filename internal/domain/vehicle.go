package domain

// VehicleClass selects the pricing column of a service package
type VehicleClass string

const (
	VehicleSedan VehicleClass = "sedan"
	VehicleLarge VehicleClass = "large" // SUV, truck, minivan
)

// AllVehicleClasses returns the supported classes in display order
func AllVehicleClasses() []VehicleClass {
	return []VehicleClass{VehicleSedan, VehicleLarge}
}

// IsValid returns true if the class is one of the supported classes
func (c VehicleClass) IsValid() bool {
	switch c {
	case VehicleSedan, VehicleLarge:
		return true
	}
	return false
}

// Label returns a human readable name of the class
func (c VehicleClass) Label() string {
	switch c {
	case VehicleSedan:
		return "Sedan / Coupe"
	case VehicleLarge:
		return "SUV / Truck / Minivan"
	}
	return string(c)
}
