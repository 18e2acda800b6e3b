package ruleset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
)

// Load reads a complete rule set from a JSON file. The file replaces the
// default tables wholesale; callers validate before use.
func Load(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.ConfigurationError{Table: "ruleset", Reason: fmt.Sprintf("cannot read %s: %v", path, err)}
	}

	var rs Ruleset
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, &models.ConfigurationError{Table: "ruleset", Reason: fmt.Sprintf("cannot parse %s: %v", path, err)}
	}

	if rs.ExactOrb == 0 {
		rs.ExactOrb = DefaultOrb
	}

	return &rs, nil
}

// LoadOrDefault returns the tables from path when one is configured, and the
// built-in Parashari tables otherwise.
func LoadOrDefault(path string) (*Ruleset, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
