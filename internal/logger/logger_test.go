package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {

	type test struct {
		level string
		exp   zerolog.Level
	}

	tests := map[string]test{
		"debug":   {level: "debug", exp: zerolog.DebugLevel},
		"trace":   {level: "trace", exp: zerolog.TraceLevel},
		"upper":   {level: " WARN ", exp: zerolog.WarnLevel},
		"empty":   {level: "", exp: zerolog.InfoLevel},
		"unknown": {level: "verbose", exp: zerolog.InfoLevel},
	}

	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			level := Init(tt.level, false)
			assert.Equal(t, tt.exp, level)
			assert.Equal(t, tt.exp, zerolog.GlobalLevel())
		})
	}
}
