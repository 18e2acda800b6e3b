package models

import "time"

// DignityClassification is the essential dignity of a planet in a sign.
// Exactly one classification applies to any placement.
type DignityClassification string

const (
	// DignityExalted means the planet is within its exaltation degree window
	DignityExalted DignityClassification = "exalted"
	// DignityMoolatrikona means the planet sits inside its moolatrikona range
	DignityMoolatrikona DignityClassification = "moolatrikona"
	// DignityOwnSign means the planet occupies a sign it rules
	DignityOwnSign DignityClassification = "own_sign"
	// DignityGreatFriendSign means the sign's ruler is a great friend
	DignityGreatFriendSign DignityClassification = "great_friend_sign"
	// DignityFriendSign means the sign's ruler is a friend
	DignityFriendSign DignityClassification = "friend_sign"
	// DignityNeutralSign means the sign's ruler is neutral
	DignityNeutralSign DignityClassification = "neutral_sign"
	// DignityEnemySign means the sign's ruler is an enemy
	DignityEnemySign DignityClassification = "enemy_sign"
	// DignityGreatEnemySign means the sign's ruler is a great enemy
	DignityGreatEnemySign DignityClassification = "great_enemy_sign"
	// DignityDebilitated means the planet is within its debilitation degree window
	DignityDebilitated DignityClassification = "debilitated"
)

// AllClassifications lists every classification from strongest to weakest
var AllClassifications = []DignityClassification{
	DignityExalted,
	DignityMoolatrikona,
	DignityOwnSign,
	DignityGreatFriendSign,
	DignityFriendSign,
	DignityNeutralSign,
	DignityEnemySign,
	DignityGreatEnemySign,
	DignityDebilitated,
}

// FriendshipRelation is the directed relationship one planet holds toward another
type FriendshipRelation string

const (
	RelationGreatFriend FriendshipRelation = "great_friend"
	RelationFriend      FriendshipRelation = "friend"
	RelationNeutral     FriendshipRelation = "neutral"
	RelationEnemy       FriendshipRelation = "enemy"
	RelationGreatEnemy  FriendshipRelation = "great_enemy"
)

// AllRelations lists every friendship relation
var AllRelations = []FriendshipRelation{
	RelationGreatFriend,
	RelationFriend,
	RelationNeutral,
	RelationEnemy,
	RelationGreatEnemy,
}

// Classification maps a relation to the dignity tier used when the planet
// occupies a sign ruled by the related planet.
func (r FriendshipRelation) Classification() DignityClassification {
	switch r {
	case RelationGreatFriend:
		return DignityGreatFriendSign
	case RelationFriend:
		return DignityFriendSign
	case RelationEnemy:
		return DignityEnemySign
	case RelationGreatEnemy:
		return DignityGreatEnemySign
	default:
		return DignityNeutralSign
	}
}

// Placement is a planet's resolved position on the sidereal ecliptic
type Placement struct {
	Planet       Planet     `json:"planet"`
	Longitude    float64    `json:"longitude"`
	Sign         ZodiacSign `json:"sign"`
	DegreeInSign float64    `json:"degree_in_sign"`
	Retrograde   bool       `json:"retrograde"`
	// SunLongitude enables combustion checks; nil when unknown or irrelevant
	SunLongitude *float64 `json:"sun_longitude,omitempty"`
}

// Assessment is the full dignity verdict for a single planet at a single instant
type Assessment struct {
	Planet         Planet                `json:"planet"`
	Instant        time.Time             `json:"instant"`
	Longitude      float64               `json:"longitude"`
	Sign           ZodiacSign            `json:"sign"`
	SignName       string                `json:"sign_name"`
	DegreeInSign   float64               `json:"degree_in_sign"`
	Classification DignityClassification `json:"classification"`
	SignRuler      Planet                `json:"sign_ruler"`
	Relation       FriendshipRelation    `json:"relation"`
	BaseScore      float64               `json:"base_score"`
	Modifier       float64               `json:"modifier"`
	Score          float64               `json:"score"`
	Support        SupportLevel          `json:"support"`
	Retrograde     bool                  `json:"retrograde"`
}
