package points

import (
	model "github.com/davidcortesdev/differentroads-loyalty/internal/models"
)

// Single source of truth for tier limits. The original system duplicated
// these caps across layers with diverging fallbacks, keep them only here.
const (
	MaxPointsPerPerson = 50   // per-traveler cap on one purchase, currency units
	AccrualRate        = 0.03 // points earned per currency unit of trip price
)

var categoryConfigs = map[model.TravelerCategory]model.CategoryConfig{
	model.TROTAMUNDOS: {
		ID:            model.TROTAMUNDOS,
		Name:          "Trotamundos",
		MaxDiscount:   50,
		PointsPerUnit: 1,
		MinTrips:      0,
		Benefits: []string{
			"Acumula el 3% de cada viaje en puntos",
			"Hasta 50€ de descuento por compra",
		},
	},
	model.VIAJERO: {
		ID:            model.VIAJERO,
		Name:          "Viajero",
		MaxDiscount:   75,
		PointsPerUnit: 1,
		MinTrips:      3,
		Benefits: []string{
			"Acumula el 3% de cada viaje en puntos",
			"Hasta 75€ de descuento por compra",
			"Acceso anticipado a salidas seleccionadas",
		},
	},
	model.NOMADA: {
		ID:            model.NOMADA,
		Name:          "Nómada",
		MaxDiscount:   100,
		PointsPerUnit: 1,
		MinTrips:      6,
		Benefits: []string{
			"Acumula el 3% de cada viaje en puntos",
			"Hasta 100€ de descuento por compra",
			"Acceso anticipado a salidas seleccionadas",
			"Atención prioritaria",
		},
	},
}

// GetCategoryConfig is total: the enum is closed, unknown values fall back
// to the base tier.
func GetCategoryConfig(category model.TravelerCategory) model.CategoryConfig {
	cfg, ok := categoryConfigs[category]
	if !ok {
		return categoryConfigs[model.TROTAMUNDOS]
	}
	return cfg
}

func AllCategoryConfigs() []model.CategoryConfig {
	return []model.CategoryConfig{
		categoryConfigs[model.TROTAMUNDOS],
		categoryConfigs[model.VIAJERO],
		categoryConfigs[model.NOMADA],
	}
}

// Tier membership by completed trips: >= 6 NOMADA, >= 3 VIAJERO, else TROTAMUNDOS
func DetermineCategoryByTrips(tripsCount int) model.TravelerCategory {
	switch {
	case tripsCount >= categoryConfigs[model.NOMADA].MinTrips:
		return model.NOMADA
	case tripsCount >= categoryConfigs[model.VIAJERO].MinTrips:
		return model.VIAJERO
	default:
		return model.TROTAMUNDOS
	}
}

func MaxDiscountForCategory(category model.TravelerCategory) int {
	return GetCategoryConfig(category).MaxDiscount
}
