package main

import (
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	previousLevel := log.GetLevel()
	t.Cleanup(func() { log.SetLevel(previousLevel) })

	require.NoError(t, InitLogger("debug"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.Equal(t, os.Stderr, log.StandardLogger().Out)

	assert.Error(t, InitLogger("verbose"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}
