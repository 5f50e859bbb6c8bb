package logger_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env       string
		wantDebug bool
	}{
		{env: "production", wantDebug: false},
		{env: "development", wantDebug: true},
		{env: "", wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log, err := logger.New(tt.env)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDebug, log.Core().Enabled(zap.DebugLevel))
		})
	}
}
