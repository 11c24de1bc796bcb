package get_services

import "github.com/m04kA/SMC-DetailingService/internal/domain"

type Catalog interface {
	GetBookableServices() []domain.ServicePackage
	GetAddOns() []domain.ServicePackage
	GetService(id string) (domain.ServicePackage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
