package app

import (
	"testing"

	"go-hrm/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewMailer_FallsBackToLogMailer(t *testing.T) {
	m, err := newMailer(config.Config{}, zap.NewNop())
	assert.NoError(t, err)
	assert.NotNil(t, m)
}

func TestModelsAreRegistered(t *testing.T) {
	assert.Len(t, models, 13)
}
