package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mab2k/homebridge-teufel/internal/config"
	"github.com/mab2k/homebridge-teufel/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o600))
	return dir
}

func Test_InitialiseConfig(t *testing.T) {

	t.Run("should read the config file and fill in defaults", func(t *testing.T) {
		// arrange
		dir := writeConfig(t, `{
			"gatewayUrl": "http://192.168.1.20:47365/",
			"gateway": {"timeout": "5s"},
			"homekit": {"pin": "11122333"}
		}`)

		// act
		cfg, err := config.InitialiseConfig(dir)

		// assert
		require.NoError(t, err)
		assert.Equal(t, "http://192.168.1.20:47365", cfg.GatewayURL)
		assert.Equal(t, 5*time.Second, cfg.Gateway.Timeout)
		assert.Equal(t, "11122333", cfg.HomeKit.Pin)
		assert.Equal(t, 5.0, cfg.Gateway.RateLimitRPS)
		assert.Equal(t, constants.DefaultStatePushDelay, cfg.Timing.StatePushDelay)
		assert.Equal(t, constants.DefaultVirtualZonePlayDelay, cfg.Timing.VirtualZonePlayDelay)
	})

	t.Run("environment variables: should override the file", func(t *testing.T) {
		// arrange
		dir := writeConfig(t, `{"gatewayUrl": "http://gateway", "api": {"address": ":8000"}}`)
		t.Setenv("TEUFEL_API_ADDRESS", ":9000")
		t.Setenv("TEUFEL_TIMING_REFRESHTHROTTLE", "250ms")

		// act
		cfg, err := config.InitialiseConfig(dir)

		// assert
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.API.Address)
		assert.Equal(t, 250*time.Millisecond, cfg.Timing.RefreshThrottle)
	})

	t.Run("no config file: should use the environment only", func(t *testing.T) {
		// arrange
		t.Setenv("TEUFEL_GATEWAYURL", "http://gateway")

		// act
		cfg, err := config.InitialiseConfig(t.TempDir())

		// assert
		require.NoError(t, err)
		assert.Equal(t, "http://gateway", cfg.GatewayURL)
	})

	t.Run("no gateway url: should return ErrMissingGatewayURL", func(t *testing.T) {
		// act
		_, err := config.InitialiseConfig(t.TempDir())

		// assert
		assert.ErrorIs(t, err, config.ErrMissingGatewayURL)
	})

	t.Run("zero or negative timing: should return ErrInvalidTiming", func(t *testing.T) {
		for _, env := range []string{"TEUFEL_TIMING_REFRESHTHROTTLE", "TEUFEL_TIMING_STATEPUSHDELAY", "TEUFEL_TIMING_VIRTUALZONEPLAYDELAY"} {
			for _, value := range []string{"0s", "-1s"} {
				// arrange
				dir := writeConfig(t, `{"gatewayUrl": "http://gateway"}`)
				t.Setenv(env, value)

				// act
				_, err := config.InitialiseConfig(dir)

				// assert
				assert.ErrorIs(t, err, config.ErrInvalidTiming, env+"="+value)
			}
			t.Setenv(env, "1s")
		}
	})

	t.Run("malformed config file: should return an error", func(t *testing.T) {
		dir := writeConfig(t, `{"gatewayUrl": `)

		_, err := config.InitialiseConfig(dir)

		assert.Error(t, err)
	})
}
