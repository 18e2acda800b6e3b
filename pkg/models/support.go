package models

// SupportLevel is the qualitative verdict on how well a transit supports a
// numerology number, ordered from most to least supportive.
type SupportLevel string

const (
	SupportStronglySupportive    SupportLevel = "strongly_supportive"
	SupportSupportive            SupportLevel = "supportive"
	SupportNeutral               SupportLevel = "neutral"
	SupportContradictory         SupportLevel = "contradictory"
	SupportStronglyContradictory SupportLevel = "strongly_contradictory"
)

// AllSupportLevels lists every level from least to most supportive, matching
// ascending score band order.
var AllSupportLevels = []SupportLevel{
	SupportStronglyContradictory,
	SupportContradictory,
	SupportNeutral,
	SupportSupportive,
	SupportStronglySupportive,
}

// Rank returns the ordinal position of the level; higher is more supportive.
// Unknown levels rank below every defined level.
func (s SupportLevel) Rank() int {
	for i, level := range AllSupportLevels {
		if s == level {
			return i
		}
	}
	return -1
}
