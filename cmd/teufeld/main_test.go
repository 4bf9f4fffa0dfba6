package main

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mab2k/homebridge-teufel/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_NewLogger(t *testing.T) {

	levels := map[string]log.Level{
		"debug": log.DebugLevel,
		"info":  log.InfoLevel,
		"WARN":  log.WarnLevel,
		"error": log.ErrorLevel,
		"fatal": log.FatalLevel,
		"bogus": log.InfoLevel,
	}

	for level, expected := range levels {
		t.Run(level+": should set the matching log level", func(t *testing.T) {
			// arrange
			cfg := &config.Config{}
			cfg.Log.Level = level

			// act
			logger := newLogger(cfg)

			// assert
			assert.Equal(t, expected, logger.GetLevel())
		})
	}
}
