package get_services

import "github.com/m04kA/SMC-DetailingService/internal/domain"

// MenuResponse HTTP response model со списком услуг
type MenuResponse struct {
	VehicleClasses []VehicleClassResponse `json:"vehicleClasses"`
	Services       []ServiceResponse      `json:"services"`
	AddOns         []ServiceResponse      `json:"addOns"`
}

// VehicleClassResponse класс автомобиля
type VehicleClassResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ServiceResponse пакет услуг (суммы в центах)
type ServiceResponse struct {
	ID                  string           `json:"id"`
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	Duration            string           `json:"duration,omitempty"`
	Prices              map[string]int64 `json:"prices"`
	StartingAt          int64            `json:"startingAt"`
	StartingAtFormatted string           `json:"startingAtFormatted"`
	Features            []string         `json:"features"`
	IsAddOn             bool             `json:"isAddOn"`
	Popular             bool             `json:"popular"`
}

// FromServicePackage конвертирует domain.ServicePackage в ServiceResponse
func FromServicePackage(p domain.ServicePackage) ServiceResponse {
	prices := make(map[string]int64)
	startingAt := p.DefaultPrice
	if !p.IsAddOn {
		for i, class := range domain.AllVehicleClasses() {
			price := p.PriceFor(class)
			prices[string(class)] = price
			if i == 0 || price < startingAt {
				startingAt = price
			}
		}
	}

	features := p.Features
	if features == nil {
		features = []string{}
	}

	return ServiceResponse{
		ID:                  p.ID,
		Title:               p.Title,
		Description:         p.Description,
		Duration:            p.Duration,
		Prices:              prices,
		StartingAt:          startingAt,
		StartingAtFormatted: domain.FormatCents(startingAt),
		Features:            features,
		IsAddOn:             p.IsAddOn,
		Popular:             p.Popular,
	}
}

// FromServicePackages конвертирует список пакетов
func FromServicePackages(packages []domain.ServicePackage) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(packages))
	for _, p := range packages {
		result = append(result, FromServicePackage(p))
	}
	return result
}

func vehicleClasses() []VehicleClassResponse {
	classes := domain.AllVehicleClasses()
	result := make([]VehicleClassResponse, 0, len(classes))
	for _, c := range classes {
		result = append(result, VehicleClassResponse{ID: string(c), Label: c.Label()})
	}
	return result
}
