package cluster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileYieldsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.json"))

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cluster_settings.json")

	want := DefaultSettings()
	want.VerticalWeight = 2.25
	want.MaxGap = 300

	require.NoError(t, SaveSettings(path, want))

	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"density_factor": 4.0}`), 0o644))

	got, err := LoadSettings(path)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, got.DensityFactor, 1e-9)
	assert.InDelta(t, DefaultSettings().VerticalWeight, got.VerticalWeight, 1e-9)
}

func TestLoadSettingsBadJSONFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	got, err := LoadSettings(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), got)
}
