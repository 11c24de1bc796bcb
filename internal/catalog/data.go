package catalog

import "github.com/m04kA/SMC-DetailingService/internal/domain"

func defaultPackages() []domain.ServicePackage {
	return []domain.ServicePackage{
		{
			ID:          "maintenance-wash",
			Title:       "Maintenance Wash",
			Description: "Ideal for regular upkeep between full details or prepping for special occasions.",
			Duration:    "1 - 1.5 Hours",
			PriceByVehicleClass: map[domain.VehicleClass]int64{
				domain.VehicleSedan: 6500,
				domain.VehicleLarge: 9500,
			},
			DefaultPrice: 6500,
			Features: []string{
				"Exterior hand wash",
				"Full interior vacuum (including trunk)",
				"Tire and rim scrub with dressing",
				"Streak-free window cleaning",
				"Light interior wipe-down",
			},
		},
		{
			ID:          "full-interior",
			Title:       "Full Interior Detail",
			Description: "For a complete refresh inside your vehicle.",
			Duration:    "2.5 - 3.5 Hours",
			PriceByVehicleClass: map[domain.VehicleClass]int64{
				domain.VehicleSedan: 18000,
				domain.VehicleLarge: 20000,
			},
			DefaultPrice: 18000,
			Features: []string{
				"Full vacuum including trunk",
				"Deep clean of dashboard, vents, and panels",
				"Carpet & seat shampoo",
				"Leather or vinyl conditioning",
				"Steam sanitization",
				"Streak-free window cleaning",
			},
			Popular: true,
		},
		{
			ID:          "full-exterior",
			Title:       "Full Exterior Detail",
			Description: "Deep cleaning and decontamination for a glass-like finish.",
			Duration:    "3 - 4 Hours",
			PriceByVehicleClass: map[domain.VehicleClass]int64{
				domain.VehicleSedan: 25000,
				domain.VehicleLarge: 30000,
			},
			DefaultPrice: 25000,
			Features: []string{
				"Premium hand wash",
				"Iron fallout & clay bar treatment",
				"Wheel/tire cleaning & dressing",
				"Bug & tar removal",
				"3-month paint sealant",
				"Ideal prep before waxing or ceramic coating",
			},
		},
		{
			ID:          "engine-bay",
			Title:       "Engine Bay Cleaning",
			Description: "Detailed engine compartment cleaning.",
			Duration:    "45 Mins",
			PriceByVehicleClass: map[domain.VehicleClass]int64{
				domain.VehicleSedan: 12500,
				domain.VehicleLarge: 12500,
			},
			DefaultPrice: 12500,
			Features: []string{
				"Detailed engine compartment cleaning",
				"Safe degreasing and dressing",
				"Protects plastic and rubber components",
			},
			IsAddOn: true,
		},
	}
}
