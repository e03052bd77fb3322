package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	t.Run("should create a new zap logger instance", func(t *testing.T) {
		// Act
		logger := NewLogger()

		// Assert
		assert.NotNil(t, logger)
		assert.IsType(t, &zap.Logger{}, logger)
	})

	t.Run("should create logger with JSON encoder for production", func(t *testing.T) {
		logger, err := NewProductionLogger()

		assert.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("should create logger with development config", func(t *testing.T) {
		logger, err := NewDevelopmentLogger()

		assert.NoError(t, err)
		assert.NotNil(t, logger)
	})
}
