package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1024, s.ScreenWidth)
	assert.Equal(t, 640, s.ScreenHeight)
	assert.InDelta(t, 66.0, s.FOVDegrees, 1e-9)
	assert.InDelta(t, 100.0, s.FarPlane, 1e-9)
	assert.Equal(t, 20, s.MaxAmmo)
	assert.InDelta(t, 5.0, s.WaveCountdown, 1e-9)
	assert.True(t, s.AudioEnabled)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("WOLFIE3D_MAX_AMMO", "40")
	t.Setenv("WOLFIE3D_FOV_DEGREES", "90")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 40, s.MaxAmmo)
	assert.InDelta(t, 90.0, s.FOVDegrees, 1e-9)
}

func TestValidateRejectsBadValues(t *testing.T) {
	good := func() *Settings {
		s, err := Load()
		require.NoError(t, err)
		return s
	}

	s := good()
	s.ScreenWidth = 0
	assert.Error(t, s.Validate())

	s = good()
	s.FOVDegrees = 180
	assert.Error(t, s.Validate())

	s = good()
	s.FarPlane = -1
	assert.Error(t, s.Validate())

	s = good()
	s.AudioVolume = 1.5
	assert.Error(t, s.Validate())
}
