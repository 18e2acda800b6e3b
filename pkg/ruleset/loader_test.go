package ruleset

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
)

func TestLoadOrDefault_EmptyPathUsesDefaults(t *testing.T) {
	rs, err := LoadOrDefault("")
	require.NoError(t, err)
	require.NoError(t, rs.Validate())
	assert.Equal(t, DefaultOrb, rs.ExactOrb)
}

func TestLoad_RoundTripsDefaultTables(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ruleset.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	rs, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, rs.Validate())
	assert.Equal(t, Default().BasePoints, rs.BasePoints)
	assert.Equal(t, Default().NumerologyRulers, rs.NumerologyRulers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))

	var configErr *models.ConfigurationError
	require.True(t, errors.As(err, &configErr))
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruleset.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)

	var configErr *models.ConfigurationError
	require.True(t, errors.As(err, &configErr))
}

func TestLoad_DefaultsOrbWhenOmitted(t *testing.T) {
	rs := Default()
	rs.ExactOrb = 0
	data, err := json.Marshal(rs)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ruleset.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultOrb, loaded.ExactOrb)
}
