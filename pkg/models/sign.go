package models

// ZodiacSign is a sidereal zodiac sign, indexed 0 (Aries) through 11 (Pisces).
// Each sign spans exactly 30 degrees of the ecliptic.
type ZodiacSign int

const (
	SignAries ZodiacSign = iota
	SignTaurus
	SignGemini
	SignCancer
	SignLeo
	SignVirgo
	SignLibra
	SignScorpio
	SignSagittarius
	SignCapricorn
	SignAquarius
	SignPisces
)

// SignCount is the number of zodiac signs
const SignCount = 12

// DegreesPerSign is the ecliptic span of a single sign
const DegreesPerSign = 30.0

// Element is the classical element of a zodiac sign
type Element string

const (
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementAir   Element = "air"
	ElementWater Element = "water"
)

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the sign's display name
func (s ZodiacSign) String() string {
	if s < 0 || s >= SignCount {
		return "Unknown"
	}
	return signNames[s]
}

// Element returns the sign's classical element. The four elements repeat in
// fixed order: fire, earth, air, water.
func (s ZodiacSign) Element() Element {
	switch s % 4 {
	case 0:
		return ElementFire
	case 1:
		return ElementEarth
	case 2:
		return ElementAir
	default:
		return ElementWater
	}
}

// StartLongitude returns the absolute ecliptic longitude where the sign begins
func (s ZodiacSign) StartLongitude() float64 {
	return float64(s) * DegreesPerSign
}

// Valid reports whether the sign index is in range
func (s ZodiacSign) Valid() bool {
	return s >= 0 && s < SignCount
}
