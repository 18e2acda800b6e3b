// Package zodiac resolves sidereal ecliptic longitudes into zodiac signs.
package zodiac

import (
	"math"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
)

// Resolve maps a sidereal longitude to its sign and degree within that sign.
// The twelve signs partition [0, 360) exactly: each boundary degree belongs
// to the sign it opens (30.0 is Taurus, not Aries). Longitudes outside the
// range return *models.OutOfRangeError.
func Resolve(longitude float64) (models.ZodiacSign, float64, error) {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) || longitude < 0 || longitude >= 360 {
		return 0, 0, &models.OutOfRangeError{Longitude: longitude}
	}

	sign := models.ZodiacSign(int(longitude / models.DegreesPerSign))
	if sign >= models.SignCount {
		// Guards float edge cases just under 360
		sign = models.SignPisces
	}

	return sign, longitude - sign.StartLongitude(), nil
}

// Normalize wraps any longitude into [0, 360)
func Normalize(longitude float64) float64 {
	longitude = math.Mod(longitude, 360)
	if longitude < 0 {
		longitude += 360
	}
	return longitude
}

// Separation returns the shortest angular distance between two longitudes,
// always in [0, 180].
func Separation(a, b float64) float64 {
	diff := math.Abs(Normalize(a) - Normalize(b))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
