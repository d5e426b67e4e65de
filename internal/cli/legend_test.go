package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rileyhilliard/bmi/internal/bmi"
	"github.com/rileyhilliard/bmi/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegendEntries(t *testing.T) {
	entries := legendEntries()
	require.Len(t, entries, 7)

	assert.Equal(t, bmi.SevereUnderweight, entries[0].Category)
	assert.Equal(t, 0.0, entries[0].Min, "the first category is open below")
	assert.Equal(t, "35 - 40", entries[5].Range)

	last := entries[6]
	assert.Equal(t, bmi.Obese3, last.Category)
	assert.Equal(t, ">= 40", last.Range)
	assert.Equal(t, 40.0, last.Min)
	assert.Zero(t, last.Max)

	for i := 1; i < len(entries); i++ {
		assert.Equal(t, entries[i-1].Max, entries[i].Min, "entries should be contiguous")
	}
}

func TestRunLegend_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runLegend(&buf, false, 56, bmi.Overweight))

	out := buf.String()
	for _, e := range legendEntries() {
		assert.Contains(t, out, e.Label)
		assert.Contains(t, out, e.Color)
	}
	assert.Equal(t, 1, strings.Count(out, ui.SymbolFocus))
}

func TestRunLegend_NoMark(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runLegend(&buf, false, 56, bmi.Undefined))
	assert.NotContains(t, buf.String(), ui.SymbolFocus)
}

func TestRunLegend_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runLegend(&buf, true, 56, bmi.Undefined))

	var env struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.True(t, env.Success)
	require.Len(t, env.Data, 7)
	assert.Equal(t, "obese_2", env.Data[5]["category"])
	assert.Equal(t, "#8C1212", env.Data[5]["color"])
}
