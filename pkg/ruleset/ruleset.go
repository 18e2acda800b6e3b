// Package ruleset holds the declarative fact tables that drive dignity
// classification and scoring. Tables are plain data so an alternate classical
// school can be substituted without touching the engine.
package ruleset

import (
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
)

// DegreeWindow names a planet's exaltation or debilitation sign and the
// degree of deepest effect within it. The dignity covers the whole sign;
// the exact degree only feeds the placement modifier, within Orb. WholeSign
// marks windows with no exact degree, the convention used for the lunar
// nodes whose deep degree is disputed.
type DegreeWindow struct {
	Sign      models.ZodiacSign `json:"sign"`
	Degree    float64           `json:"degree"`
	Orb       float64           `json:"orb"`
	WholeSign bool              `json:"whole_sign,omitempty"`
}

// Longitude returns the absolute ecliptic longitude of the exact degree
func (w DegreeWindow) Longitude() float64 {
	return w.Sign.StartLongitude() + w.Degree
}

// MoolatrikonaRange is a planet's moolatrikona span within a single sign
type MoolatrikonaRange struct {
	Sign        models.ZodiacSign `json:"sign"`
	StartDegree float64           `json:"start_degree"`
	EndDegree   float64           `json:"end_degree"`
}

// SupportBand maps a score threshold to a support level. Bands are ordered by
// ascending threshold; a score belongs to the last band whose threshold it
// meets, so exact-threshold scores land in the more supportive band.
type SupportBand struct {
	Threshold float64             `json:"threshold"`
	Level     models.SupportLevel `json:"level"`
}

// Ruleset is the complete set of fact tables consumed by the engine
type Ruleset struct {
	// ExactOrb is the default tolerance treated as an exact degree hit,
	// applied when a window omits its own
	ExactOrb float64 `json:"exact_orb"`

	Exaltation   map[models.Planet]DegreeWindow        `json:"exaltation"`
	Debilitation map[models.Planet]DegreeWindow        `json:"debilitation"`
	Moolatrikona map[models.Planet]MoolatrikonaRange   `json:"moolatrikona"`
	OwnSigns     map[models.Planet][]models.ZodiacSign `json:"own_signs"`
	SignRulers   map[models.ZodiacSign]models.Planet   `json:"sign_rulers"`

	// Friendship holds the directed relation each planet (outer key) bears
	// toward every other planet (inner key). The matrix is not symmetric.
	Friendship map[models.Planet]map[models.Planet]models.FriendshipRelation `json:"friendship"`

	BasePoints   map[models.DignityClassification]float64 `json:"base_points"`
	SupportBands []SupportBand                            `json:"support_bands"`

	// NumerologyRulers maps root digits 1-9 to their ruling planets
	NumerologyRulers map[int]models.Planet `json:"numerology_rulers"`
}

// DefaultOrb is the tolerance within which a placement counts as exactly on
// its deep exaltation or debilitation degree.
const DefaultOrb = 0.5

// Default returns the standard Parashari fact tables
func Default() *Ruleset {
	return &Ruleset{
		ExactOrb: DefaultOrb,

		Exaltation: map[models.Planet]DegreeWindow{
			models.PlanetSun:     {Sign: models.SignAries, Degree: 10, Orb: DefaultOrb},
			models.PlanetMoon:    {Sign: models.SignTaurus, Degree: 3, Orb: DefaultOrb},
			models.PlanetMars:    {Sign: models.SignCapricorn, Degree: 28, Orb: DefaultOrb},
			models.PlanetMercury: {Sign: models.SignVirgo, Degree: 15, Orb: DefaultOrb},
			models.PlanetJupiter: {Sign: models.SignCancer, Degree: 5, Orb: DefaultOrb},
			models.PlanetVenus:   {Sign: models.SignPisces, Degree: 27, Orb: DefaultOrb},
			models.PlanetSaturn:  {Sign: models.SignLibra, Degree: 20, Orb: DefaultOrb},
			models.PlanetRahu:    {Sign: models.SignTaurus, WholeSign: true},
			models.PlanetKetu:    {Sign: models.SignScorpio, WholeSign: true},
		},

		Debilitation: map[models.Planet]DegreeWindow{
			models.PlanetSun:     {Sign: models.SignLibra, Degree: 10, Orb: DefaultOrb},
			models.PlanetMoon:    {Sign: models.SignScorpio, Degree: 3, Orb: DefaultOrb},
			models.PlanetMars:    {Sign: models.SignCancer, Degree: 28, Orb: DefaultOrb},
			models.PlanetMercury: {Sign: models.SignPisces, Degree: 15, Orb: DefaultOrb},
			models.PlanetJupiter: {Sign: models.SignCapricorn, Degree: 5, Orb: DefaultOrb},
			models.PlanetVenus:   {Sign: models.SignVirgo, Degree: 27, Orb: DefaultOrb},
			models.PlanetSaturn:  {Sign: models.SignAries, Degree: 20, Orb: DefaultOrb},
			models.PlanetRahu:    {Sign: models.SignScorpio, WholeSign: true},
			models.PlanetKetu:    {Sign: models.SignTaurus, WholeSign: true},
		},

		// The nodes carry no moolatrikona
		Moolatrikona: map[models.Planet]MoolatrikonaRange{
			models.PlanetSun:     {Sign: models.SignLeo, StartDegree: 0, EndDegree: 20},
			models.PlanetMoon:    {Sign: models.SignTaurus, StartDegree: 4, EndDegree: 30},
			models.PlanetMars:    {Sign: models.SignAries, StartDegree: 0, EndDegree: 18},
			models.PlanetMercury: {Sign: models.SignVirgo, StartDegree: 16, EndDegree: 20},
			models.PlanetJupiter: {Sign: models.SignSagittarius, StartDegree: 0, EndDegree: 13},
			models.PlanetVenus:   {Sign: models.SignLibra, StartDegree: 0, EndDegree: 10},
			models.PlanetSaturn:  {Sign: models.SignAquarius, StartDegree: 0, EndDegree: 20},
		},

		OwnSigns: map[models.Planet][]models.ZodiacSign{
			models.PlanetSun:     {models.SignLeo},
			models.PlanetMoon:    {models.SignCancer},
			models.PlanetMars:    {models.SignAries, models.SignScorpio},
			models.PlanetMercury: {models.SignGemini, models.SignVirgo},
			models.PlanetJupiter: {models.SignSagittarius, models.SignPisces},
			models.PlanetVenus:   {models.SignTaurus, models.SignLibra},
			models.PlanetSaturn:  {models.SignCapricorn, models.SignAquarius},
		},

		SignRulers: map[models.ZodiacSign]models.Planet{
			models.SignAries:       models.PlanetMars,
			models.SignTaurus:      models.PlanetVenus,
			models.SignGemini:      models.PlanetMercury,
			models.SignCancer:      models.PlanetMoon,
			models.SignLeo:         models.PlanetSun,
			models.SignVirgo:       models.PlanetMercury,
			models.SignLibra:       models.PlanetVenus,
			models.SignScorpio:     models.PlanetMars,
			models.SignSagittarius: models.PlanetJupiter,
			models.SignCapricorn:   models.PlanetSaturn,
			models.SignAquarius:    models.PlanetSaturn,
			models.SignPisces:      models.PlanetJupiter,
		},

		Friendship: defaultFriendship(),

		BasePoints: map[models.DignityClassification]float64{
			models.DignityExalted:         100,
			models.DignityMoolatrikona:    90,
			models.DignityOwnSign:         75,
			models.DignityGreatFriendSign: 65,
			models.DignityFriendSign:      50,
			models.DignityNeutralSign:     40,
			models.DignityEnemySign:       25,
			models.DignityGreatEnemySign:  10,
			models.DignityDebilitated:     5,
		},

		SupportBands: []SupportBand{
			{Threshold: 0, Level: models.SupportStronglyContradictory},
			{Threshold: 25, Level: models.SupportContradictory},
			{Threshold: 40, Level: models.SupportNeutral},
			{Threshold: 50, Level: models.SupportSupportive},
			{Threshold: 75, Level: models.SupportStronglySupportive},
		},

		NumerologyRulers: map[int]models.Planet{
			1: models.PlanetSun,
			2: models.PlanetMoon,
			3: models.PlanetJupiter,
			4: models.PlanetRahu,
			5: models.PlanetMercury,
			6: models.PlanetVenus,
			7: models.PlanetKetu,
			8: models.PlanetSaturn,
			9: models.PlanetMars,
		},
	}
}

// defaultFriendship builds the naisargika maitri matrix. Self relations are
// great friendship; the matrix is directed, so pairs like Sun->Ketu (enemy)
// and Ketu->Sun (friend) legitimately disagree.
func defaultFriendship() map[models.Planet]map[models.Planet]models.FriendshipRelation {
	f := models.RelationFriend
	n := models.RelationNeutral
	e := models.RelationEnemy
	gf := models.RelationGreatFriend

	rows := map[models.Planet][]models.FriendshipRelation{
		// order: sun, moon, mars, mercury, jupiter, venus, saturn, rahu, ketu
		models.PlanetSun:     {gf, f, f, n, f, e, e, e, e},
		models.PlanetMoon:    {f, gf, e, f, f, f, e, e, e},
		models.PlanetMars:    {f, e, gf, f, e, f, f, f, f},
		models.PlanetMercury: {n, f, f, gf, f, e, e, e, e},
		models.PlanetJupiter: {f, f, e, f, gf, f, e, e, e},
		models.PlanetVenus:   {e, f, f, e, f, gf, f, f, f},
		models.PlanetSaturn:  {e, e, f, e, e, f, gf, f, f},
		models.PlanetRahu:    {e, e, f, e, e, f, f, gf, e},
		models.PlanetKetu:    {f, e, f, f, e, f, f, e, gf},
	}

	matrix := make(map[models.Planet]map[models.Planet]models.FriendshipRelation, len(rows))
	for planet, relations := range rows {
		row := make(map[models.Planet]models.FriendshipRelation, len(models.AllPlanets))
		for i, other := range models.AllPlanets {
			row[other] = relations[i]
		}
		matrix[planet] = row
	}
	return matrix
}
