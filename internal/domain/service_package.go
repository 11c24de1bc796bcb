package domain

// ServicePackage represents an entry of the detailing menu
type ServicePackage struct {
	ID          string
	Title       string
	Description string
	Duration    string // free-text estimate, e.g. "2.5 - 3.5 Hours"

	// PriceByVehicleClass may omit a class; DefaultPrice is used then
	PriceByVehicleClass map[VehicleClass]int64
	DefaultPrice        int64

	Features []string
	IsAddOn  bool
	Popular  bool // display hint only
}

// PriceFor returns the price in cents for the given vehicle class
func (p ServicePackage) PriceFor(class VehicleClass) int64 {
	if price, ok := p.PriceByVehicleClass[class]; ok {
		return price
	}
	return p.DefaultPrice
}

// Clone returns a deep copy of the package
func (p ServicePackage) Clone() ServicePackage {
	clone := p
	if p.PriceByVehicleClass != nil {
		clone.PriceByVehicleClass = make(map[VehicleClass]int64, len(p.PriceByVehicleClass))
		for class, price := range p.PriceByVehicleClass {
			clone.PriceByVehicleClass[class] = price
		}
	}
	if p.Features != nil {
		clone.Features = append(make([]string, 0, len(p.Features)), p.Features...)
	}
	return clone
}
