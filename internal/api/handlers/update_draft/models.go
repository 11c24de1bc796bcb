package update_draft

import "github.com/m04kA/SMC-DetailingService/internal/domain"

// VehicleRequest HTTP request model выбора класса автомобиля
type VehicleRequest struct {
	VehicleClass string `json:"vehicleClass"`
}

// ServiceRequest HTTP request model выбора пакета услуг
type ServiceRequest struct {
	ServiceID string `json:"serviceId"`
}

// SlotRequest HTTP request model выбора даты и времени
type SlotRequest struct {
	Date  string `json:"date"`  // "2026-10-21"
	Label string `json:"label"` // "09:00 AM"
}

// ContactRequest HTTP request model контактных данных
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ToDomain конвертирует ContactRequest в domain.Contact
func (r ContactRequest) ToDomain() domain.Contact {
	return domain.Contact{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}
