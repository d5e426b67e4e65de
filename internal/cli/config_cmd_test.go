package cli

import (
	"bytes"
	"testing"

	"github.com/rileyhilliard/bmi/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestPrintConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Weight.Max = 150

	var buf bytes.Buffer
	printConfig(&buf, cfg, "")

	out := buf.String()
	assert.Contains(t, out, "built-in defaults")
	assert.Contains(t, out, "Weight")
	assert.Contains(t, out, "150")
	assert.Contains(t, out, "cm")
	assert.Contains(t, out, "50ms")
}

func TestPrintConfig_ShowsPath(t *testing.T) {
	var buf bytes.Buffer
	printConfig(&buf, config.DefaultConfig(), "/tmp/project/.bmi.yaml")
	assert.Contains(t, buf.String(), "/tmp/project/.bmi.yaml")
}
