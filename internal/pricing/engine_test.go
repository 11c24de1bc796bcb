package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/catalog"
	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

func TestComputePrice_ScenarioA(t *testing.T) {
	engine := New(catalog.Default())

	price, err := engine.ComputePrice(domain.VehicleSedan, "maintenance-wash", nil)
	require.NoError(t, err)

	assert.Equal(t, int64(6500), price.BasePrice)
	assert.Equal(t, int64(0), price.AddOnsTotal)
	assert.Equal(t, int64(6500), price.Total)
	assert.Len(t, price.Lines, 1)
}

func TestComputePrice_ScenarioB(t *testing.T) {
	engine := New(catalog.Default())

	price, err := engine.ComputePrice(domain.VehicleLarge, "full-interior", []string{"engine-bay"})
	require.NoError(t, err)

	assert.Equal(t, int64(20000), price.BasePrice)
	assert.Equal(t, int64(12500), price.AddOnsTotal)
	assert.Equal(t, int64(32500), price.Total)
	assert.Equal(t, []domain.LineItem{
		{ID: "full-interior", Title: "Full Interior Detail", Amount: 20000},
		{ID: "engine-bay", Title: "Engine Bay Cleaning", Amount: 12500},
	}, price.Lines)
}

func TestComputePrice_TotalAtLeastBase(t *testing.T) {
	c := catalog.Default()
	engine := New(c)

	for _, class := range domain.AllVehicleClasses() {
		for _, service := range c.GetBookableServices() {
			base := service.PriceFor(class)

			plain, err := engine.ComputePrice(class, service.ID, nil)
			require.NoError(t, err)
			assert.Equal(t, base, plain.Total, "%s/%s without add-ons", class, service.ID)

			withAddOn, err := engine.ComputePrice(class, service.ID, []string{"engine-bay"})
			require.NoError(t, err)
			assert.Greater(t, withAddOn.Total, base, "%s/%s with add-on", class, service.ID)
		}
	}
}

func TestComputePrice_SetSemantics(t *testing.T) {
	c, err := catalog.New([]domain.ServicePackage{
		{ID: "wash", Title: "Wash", DefaultPrice: 5000},
		{ID: "wax", Title: "Wax", DefaultPrice: 2000, IsAddOn: true},
		{ID: "clay", Title: "Clay", DefaultPrice: 3000, IsAddOn: true},
	})
	require.NoError(t, err)
	engine := New(c)

	a, err := engine.ComputePrice(domain.VehicleSedan, "wash", []string{"wax", "clay"})
	require.NoError(t, err)
	b, err := engine.ComputePrice(domain.VehicleSedan, "wash", []string{"clay", "wax", "clay"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(10000), a.Total)
	assert.Equal(t, "clay", a.Lines[1].ID)
	assert.Equal(t, "wax", a.Lines[2].ID)
}

func TestComputePrice_FallsBackToDefaultPrice(t *testing.T) {
	c, err := catalog.New([]domain.ServicePackage{
		{
			ID: "wash", Title: "Wash", DefaultPrice: 5000,
			PriceByVehicleClass: map[domain.VehicleClass]int64{domain.VehicleSedan: 4000},
		},
	})
	require.NoError(t, err)

	price, err := New(c).ComputePrice(domain.VehicleLarge, "wash", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), price.Total)
}

func TestComputePrice_Errors(t *testing.T) {
	engine := New(catalog.Default())

	_, err := engine.ComputePrice(domain.VehicleSedan, "ceramic", nil)
	assert.ErrorIs(t, err, ErrUnknownService)

	_, err = engine.ComputePrice(domain.VehicleSedan, "full-interior", []string{"full-exterior"})
	assert.ErrorIs(t, err, ErrInvalidAddOn)

	_, err = engine.ComputePrice(domain.VehicleSedan, "full-interior", []string{"missing"})
	assert.ErrorIs(t, err, ErrInvalidAddOn)

	_, err = engine.ComputePrice("bus", "full-interior", nil)
	assert.ErrorIs(t, err, ErrInvalidVehicleClass)
}

func TestComputePrice_Deterministic(t *testing.T) {
	engine := New(catalog.Default())

	first, err := engine.ComputePrice(domain.VehicleLarge, "full-exterior", []string{"engine-bay"})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		next, err := engine.ComputePrice(domain.VehicleLarge, "full-exterior", []string{"engine-bay"})
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestNormalizeAddOns(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeAddOns(nil))
	assert.Equal(t, []string{"a", "b"}, NormalizeAddOns([]string{"b", "a", "b"}))
}
