package pricing

import "github.com/m04kA/SMC-DetailingService/internal/domain"

// Catalog интерфейс каталога услуг
type Catalog interface {
	GetService(id string) (domain.ServicePackage, error)
}
