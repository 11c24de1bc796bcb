package pricing

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// Engine рассчитывает стоимость выбранного набора услуг
// Не хранит состояния: одинаковые входные данные дают одинаковый результат
type Engine struct {
	catalog Catalog
}

// New создает калькулятор стоимости
func New(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// ComputePrice рассчитывает стоимость для класса автомобиля, основной услуги и набора доп. услуг
// Доп. услуги имеют фиксированную цену, не зависящую от класса автомобиля
func (e *Engine) ComputePrice(class domain.VehicleClass, serviceID string, addOnIDs []string) (domain.PriceBreakdown, error) {
	// 1. Валидация класса автомобиля
	if !class.IsValid() {
		return domain.PriceBreakdown{}, fmt.Errorf("%w: %q", ErrInvalidVehicleClass, class)
	}

	// 2. Основная услуга
	service, err := e.catalog.GetService(serviceID)
	if err != nil {
		return domain.PriceBreakdown{}, fmt.Errorf("%w: %q: %v", ErrUnknownService, serviceID, err)
	}

	basePrice := service.PriceFor(class)
	breakdown := domain.PriceBreakdown{
		BasePrice: basePrice,
		Lines: []domain.LineItem{
			{ID: service.ID, Title: service.Title, Amount: basePrice},
		},
	}

	// 3. Доп. услуги: множество, порядок не важен
	for _, id := range NormalizeAddOns(addOnIDs) {
		addOn, err := e.catalog.GetService(id)
		if err != nil {
			return domain.PriceBreakdown{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddOn, id, err)
		}
		if !addOn.IsAddOn {
			return domain.PriceBreakdown{}, fmt.Errorf("%w: %q is not an add-on", ErrInvalidAddOn, id)
		}

		breakdown.AddOnsTotal += addOn.DefaultPrice
		breakdown.Lines = append(breakdown.Lines, domain.LineItem{
			ID:     addOn.ID,
			Title:  addOn.Title,
			Amount: addOn.DefaultPrice,
		})
	}

	breakdown.Total = breakdown.BasePrice + breakdown.AddOnsTotal
	return breakdown, nil
}

// NormalizeAddOns возвращает отсортированный список уникальных ID
func NormalizeAddOns(ids []string) []string {
	if len(ids) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	sort.Strings(result)
	return result
}
