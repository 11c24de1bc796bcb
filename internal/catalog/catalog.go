package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// Catalog неизменяемый реестр пакетов услуг
// Все методы возвращают копии, вызывающий код не может изменить реестр
type Catalog struct {
	packages     []domain.ServicePackage
	index        map[string]int
	testimonials []domain.Testimonial
}

// New создает каталог из списка пакетов с проверкой корректности
func New(packages []domain.ServicePackage) (*Catalog, error) {
	if len(packages) == 0 {
		return nil, fmt.Errorf("%w: no packages", ErrInvalidCatalog)
	}

	c := &Catalog{
		packages: make([]domain.ServicePackage, 0, len(packages)),
		index:    make(map[string]int, len(packages)),
	}

	bookable := 0
	for _, pkg := range packages {
		if err := validatePackage(pkg); err != nil {
			return nil, err
		}
		if _, exists := c.index[pkg.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, pkg.ID)
		}
		if !pkg.IsAddOn {
			bookable++
		}

		c.index[pkg.ID] = len(c.packages)
		c.packages = append(c.packages, pkg.Clone())
	}

	if bookable == 0 {
		return nil, fmt.Errorf("%w: no bookable packages", ErrInvalidCatalog)
	}

	return c, nil
}

// Default возвращает каталог услуг бизнеса с отзывами клиентов
func Default() *Catalog {
	c, err := New(defaultPackages())
	if err != nil {
		panic(fmt.Sprintf("catalog: default catalog is invalid: %v", err))
	}
	if err := c.SetTestimonials(defaultTestimonials()); err != nil {
		panic(fmt.Sprintf("catalog: default testimonials are invalid: %v", err))
	}
	return c
}

// SetTestimonials заменяет отзывы клиентов; вызывается при инициализации
func (c *Catalog) SetTestimonials(items []domain.Testimonial) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Content) == "" {
			return fmt.Errorf("%w: testimonial without id or content", ErrInvalidCatalog)
		}
		if item.Rating < 1 || item.Rating > domain.MaxRating {
			return fmt.Errorf("%w: testimonial %q has rating %d", ErrInvalidCatalog, item.ID, item.Rating)
		}
		if _, ok := seen[item.ID]; ok {
			return fmt.Errorf("%w: duplicate testimonial %q", ErrInvalidCatalog, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	c.testimonials = append([]domain.Testimonial(nil), items...)
	return nil
}

// Testimonials возвращает отзывы клиентов в порядке добавления
func (c *Catalog) Testimonials() []domain.Testimonial {
	return append([]domain.Testimonial{}, c.testimonials...)
}

// GetServices возвращает все пакеты в порядке добавления
func (c *Catalog) GetServices() []domain.ServicePackage {
	return c.filter(func(domain.ServicePackage) bool { return true })
}

// GetService возвращает пакет по ID
func (c *Catalog) GetService(id string) (domain.ServicePackage, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.ServicePackage{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.packages[i].Clone(), nil
}

// GetBookableServices возвращает основные пакеты (без дополнительных услуг)
func (c *Catalog) GetBookableServices() []domain.ServicePackage {
	return c.filter(func(p domain.ServicePackage) bool { return !p.IsAddOn })
}

// GetAddOns возвращает дополнительные услуги
func (c *Catalog) GetAddOns() []domain.ServicePackage {
	return c.filter(func(p domain.ServicePackage) bool { return p.IsAddOn })
}

func (c *Catalog) filter(keep func(domain.ServicePackage) bool) []domain.ServicePackage {
	result := make([]domain.ServicePackage, 0, len(c.packages))
	for _, pkg := range c.packages {
		if keep(pkg) {
			result = append(result, pkg.Clone())
		}
	}
	return result
}

func validatePackage(pkg domain.ServicePackage) error {
	if strings.TrimSpace(pkg.ID) == "" {
		return fmt.Errorf("%w: empty package id", ErrInvalidCatalog)
	}
	if strings.TrimSpace(pkg.Title) == "" {
		return fmt.Errorf("%w: package %q has no title", ErrInvalidCatalog, pkg.ID)
	}
	if pkg.DefaultPrice <= 0 {
		return fmt.Errorf("%w: package %q must have a positive default price", ErrInvalidCatalog, pkg.ID)
	}
	for class, price := range pkg.PriceByVehicleClass {
		if !class.IsValid() {
			return fmt.Errorf("%w: package %q has price for unknown vehicle class %q", ErrInvalidCatalog, pkg.ID, class)
		}
		if price <= 0 {
			return fmt.Errorf("%w: package %q has non-positive price for %s", ErrInvalidCatalog, pkg.ID, class)
		}
	}
	return nil
}
