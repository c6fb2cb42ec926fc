package report

import (
	"encoding/json"
	"testing"

	"fjacquet/finance-tracker/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStats() []ColumnStats {
	return []ColumnStats{
		{Column: "Budget", Mean: 1000, Median: 1000, Mode: ptr(1000)},
		{Column: "Extras", Mean: 1.75, Median: 1.5},
	}
}

func TestGenerator_Text(t *testing.T) {
	generator := NewGenerator(logging.NewMockLogger())

	out, err := generator.Generate(sampleStats(), FormatText)

	require.NoError(t, err)
	want := "Analysis for Budget:\n\n" +
		"Mean: 1000\n" +
		"Median: 1000\n" +
		"Mode: 1000\n\n" +
		"Analysis for Extras:\n\n" +
		"Mean: 1.75\n" +
		"Median: 1.5\n" +
		"Mode: No mode\n\n"
	assert.Equal(t, want, string(out))
}

func TestGenerator_DefaultFormatIsText(t *testing.T) {
	generator := NewGenerator(logging.NewMockLogger())

	out, err := generator.Generate(sampleStats(), "")

	require.NoError(t, err)
	assert.Contains(t, string(out), "Analysis for Budget:")
}

func TestGenerator_JSON(t *testing.T) {
	generator := NewGenerator(logging.NewMockLogger())

	out, err := generator.Generate(sampleStats(), FormatJSON)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Budget", decoded[0]["column"])
	assert.Equal(t, 1000.0, decoded[0]["mode"])
	assert.Nil(t, decoded[1]["mode"])
}

func TestGenerator_JSONEmpty(t *testing.T) {
	out, err := NewGenerator(nil).Generate(nil, FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(out))
}

func TestGenerator_UnsupportedFormat(t *testing.T) {
	_, err := NewGenerator(logging.NewMockLogger()).Generate(sampleStats(), "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format: xml")
}
