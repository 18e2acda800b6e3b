package models

import "fmt"

// Planet is one of the nine grahas used in Vedic dignity analysis
type Planet string

const (
	PlanetSun     Planet = "sun"
	PlanetMoon    Planet = "moon"
	PlanetMars    Planet = "mars"
	PlanetMercury Planet = "mercury"
	PlanetJupiter Planet = "jupiter"
	PlanetVenus   Planet = "venus"
	PlanetSaturn  Planet = "saturn"
	// PlanetRahu is the north lunar node
	PlanetRahu Planet = "rahu"
	// PlanetKetu is the south lunar node, always opposite Rahu
	PlanetKetu Planet = "ketu"
)

// AllPlanets lists every graha in traditional order
var AllPlanets = []Planet{
	PlanetSun,
	PlanetMoon,
	PlanetMars,
	PlanetMercury,
	PlanetJupiter,
	PlanetVenus,
	PlanetSaturn,
	PlanetRahu,
	PlanetKetu,
}

// IsNode reports whether the planet is a lunar node (Rahu or Ketu)
func (p Planet) IsNode() bool {
	return p == PlanetRahu || p == PlanetKetu
}

// ParsePlanet converts a string to a Planet
func ParsePlanet(s string) (Planet, error) {
	for _, p := range AllPlanets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown planet %q", s)
}
