package container_test

import (
	"testing"

	"afredes/pdf2docx/internal/config"
	"afredes/pdf2docx/internal/container"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.InitializeConfig()
	require.NoError(t, err)
	return cfg
}

func TestNewContainerRejectsNilConfig(t *testing.T) {
	c, err := container.NewContainer(nil)

	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestNewContainerWiresDependencies(t *testing.T) {
	cfg := testConfig(t)

	c, err := container.NewContainer(cfg)
	require.NoError(t, err)

	assert.NotNil(t, c.GetLogger())
	assert.Same(t, cfg, c.GetConfig())
	assert.NotNil(t, c.GetExtractor())
	assert.NotNil(t, c.GetConverter())
	assert.NotNil(t, c.GetImageExtractor())
}
