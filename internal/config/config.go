package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mab2k/homebridge-teufel/internal/constants"
	"github.com/spf13/viper"
)

var (
	ErrMissingGatewayURL = errors.New("gatewayUrl is not configured")
	ErrInvalidTiming     = errors.New("timing values must be positive")
)

type Config struct {
	GatewayURL string `mapstructure:"gatewayUrl"`
	Gateway    struct {
		Timeout      time.Duration `mapstructure:"timeout"`
		RateLimitRPS float64       `mapstructure:"rateLimitRps"`
	} `mapstructure:"gateway"`
	HomeKit struct {
		Name        string `mapstructure:"name"`
		Pin         string `mapstructure:"pin"`
		StoragePath string `mapstructure:"storagePath"`
		Address     string `mapstructure:"address"`
	} `mapstructure:"homekit"`
	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	API struct {
		Address string `mapstructure:"address"`
	} `mapstructure:"api"`
	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`
	Timing struct {
		StatePushDelay       time.Duration `mapstructure:"statePushDelay"`
		VirtualZonePlayDelay time.Duration `mapstructure:"virtualZonePlayDelay"`
		RefreshThrottle      time.Duration `mapstructure:"refreshThrottle"`
	} `mapstructure:"timing"`
}

var defaultSearchPaths = []string{"/etc/teufel/", "$HOME/.config/teufel/", "."}

// InitialiseConfig reads config.json from the first search path containing
// one. A missing file is fine, everything but gatewayUrl has a default and
// every key can be set through TEUFEL_* environment variables.
func InitialiseConfig(searchPaths ...string) (*Config, error) {
	if len(searchPaths) == 0 {
		searchPaths = defaultSearchPaths
	}

	v := viper.New()
	v.SetConfigName("config") // name of config file (without extension)
	v.SetConfigType("json")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	// gateway.timeout -> TEUFEL_GATEWAY_TIMEOUT
	v.SetEnvPrefix("TEUFEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("fatal error config file: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if strings.TrimSpace(cfg.GatewayURL) == "" {
		return nil, ErrMissingGatewayURL
	}
	cfg.GatewayURL = strings.TrimRight(cfg.GatewayURL, "/")

	if err := validateTiming(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validateTiming(cfg Config) error {
	timings := map[string]time.Duration{
		"timing.statePushDelay":       cfg.Timing.StatePushDelay,
		"timing.virtualZonePlayDelay": cfg.Timing.VirtualZonePlayDelay,
		"timing.refreshThrottle":      cfg.Timing.RefreshThrottle,
	}
	for key, value := range timings {
		if value <= 0 {
			return fmt.Errorf("%w: %s is %s", ErrInvalidTiming, key, value)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gatewayUrl", "")
	v.SetDefault("gateway.timeout", 10*time.Second)
	v.SetDefault("gateway.rateLimitRps", 5.0)
	v.SetDefault("homekit.name", "Teufel Bridge")
	v.SetDefault("homekit.pin", "00102003")
	v.SetDefault("homekit.storagePath", "./data/homekit")
	v.SetDefault("homekit.address", "")
	v.SetDefault("database.path", "./data/teufel.db")
	v.SetDefault("api.address", ":8780")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("timing.statePushDelay", constants.DefaultStatePushDelay)
	v.SetDefault("timing.virtualZonePlayDelay", constants.DefaultVirtualZonePlayDelay)
	v.SetDefault("timing.refreshThrottle", constants.DefaultRefreshThrottle)
}
