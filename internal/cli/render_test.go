package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rileyhilliard/bmi/internal/config"
	"github.com/rileyhilliard/bmi/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func TestRunRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runRender(&buf, config.DefaultConfig(), renderOptions{Format: FormatText, Width: 60}))

	out := buf.String()
	assert.Contains(t, out, "Body Mass Index")
	assert.Contains(t, out, "Weight")
	assert.Contains(t, out, "70 kg")
	assert.Contains(t, out, "170 cm")
	assert.Contains(t, out, "BMI: 24.22 - normal")
}

func TestRunRender_Overrides(t *testing.T) {
	var buf bytes.Buffer
	opts := renderOptions{Weight: float(90), Height: float(180), Width: 60}
	require.NoError(t, runRender(&buf, config.DefaultConfig(), opts))

	assert.Contains(t, buf.String(), "BMI: 27.77 - overweight")
}

func TestRunRender_ClampsToSliderRange(t *testing.T) {
	var buf bytes.Buffer
	opts := renderOptions{Weight: float(500), Height: float(140), Width: 60}
	require.NoError(t, runRender(&buf, config.DefaultConfig(), opts))

	assert.Contains(t, buf.String(), "140 kg")
	assert.Contains(t, buf.String(), "BMI: 71.42 - obese III")
}

func TestRunRender_HTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runRender(&buf, config.DefaultConfig(), renderOptions{Format: "HTML"}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<div"))
	assert.Contains(t, out, `type="range"`)
	assert.Contains(t, out, "BMI: 24.22 - normal")
	assert.Contains(t, out, "progress-bar")
	assert.Contains(t, out, "35 - 40")
}

func TestRunRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := runRender(&buf, config.DefaultConfig(), renderOptions{Format: "pdf"})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
	assert.Empty(t, buf.String())
}

func TestRunRender_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Height.Min = 0

	err := runRender(&bytes.Buffer{}, cfg, renderOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
