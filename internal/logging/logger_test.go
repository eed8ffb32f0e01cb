package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, err := New(Config{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "shouting"})
	assert.Error(t, err)
}

func TestNewDefaultNeverNil(t *testing.T) {
	assert.NotNil(t, NewDefault())
	assert.NotNil(t, NewDevelopment())
	assert.NotNil(t, NewNop())
}
