package stats_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/cmd/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "stats", stats.Cmd.Use)
	assert.NotEmpty(t, stats.Cmd.Short)
	assert.NotNil(t, stats.Cmd.RunE)
}

func TestStatsCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("HOME", dir)
	t.Cleanup(func() {
		root.ResetFlags()
		require.NoError(t, os.Chdir(originalDir))
	})

	input := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(input, []byte("Month,Budget,Rent\n1/2023,100,40\n2/2023,100,60\n"), 0600))

	root.Init()
	root.Cmd.AddCommand(stats.Cmd)
	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetArgs([]string{"stats", "-i", input, "--stats-format", "json"})

	require.NoError(t, root.Cmd.Execute())

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Budget", decoded[0]["column"])
	assert.Equal(t, 100.0, decoded[0]["mode"])
	assert.Equal(t, 50.0, decoded[1]["mean"])
	assert.Nil(t, decoded[1]["mode"])
}
