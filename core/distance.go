package core

import (
	"math"

	"github.com/transitlab/transitscope/schema"
)

// parsecToLightYears converts parsecs to light years.
const parsecToLightYears = 3.26156

// DistanceFromParallax converts a parallax angle in milliarcseconds into a
// light-year distance field rounded to two decimals. Non-positive and
// non-finite parallaxes have no geometric meaning and yield the sentinel.
func DistanceFromParallax(parallaxMas float64) schema.Field {
	if parallaxMas <= 0 || math.IsNaN(parallaxMas) || math.IsInf(parallaxMas, 0) {
		return schema.UnavailableField()
	}
	parsecs := 1.0 / (parallaxMas / 1000.0)
	lightYears := math.Round(parsecs*parsecToLightYears*100) / 100
	return schema.NumberField(lightYears, schema.GaiaSource)
}
