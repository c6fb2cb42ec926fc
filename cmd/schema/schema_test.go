package schema_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/cmd/schema"
	"fjacquet/finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("HOME", dir)
	t.Cleanup(func() {
		root.ResetFlags()
		require.NoError(t, os.Chdir(originalDir))
	})

	root.Init()
	if !hasSchemaCommand() {
		root.Cmd.AddCommand(schema.Cmd)
	}
	return dir
}

func hasSchemaCommand() bool {
	for _, c := range root.Cmd.Commands() {
		if c == schema.Cmd {
			return true
		}
	}
	return false
}

func readSchema(t *testing.T, path string) models.Schema {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var s models.Schema
	require.NoError(t, yaml.Unmarshal(data, &s))
	return s
}

func TestSchemaCommand_ConfiguredSchema(t *testing.T) {
	dir := setup(t)
	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetArgs([]string{"schema"})

	require.NoError(t, root.Cmd.Execute())

	assert.Equal(t, "Schema saved to schema.yaml\n", out.String())
	assert.Equal(t, models.Schema{
		Expenses: []string{"Extras", "Utilities"},
		Incomes:  []string{"Salary", "Investments"},
	}, readSchema(t, filepath.Join(dir, "schema.yaml")))
}

func TestSchemaCommand_FromInput(t *testing.T) {
	dir := setup(t)
	input := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(input, []byte("Month,Budget,Rent,Side Income\n1/2023,100,40,10\n"), 0600))
	output := filepath.Join(dir, "conf", "household.yaml")
	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetArgs([]string{"schema", "-i", input, "-o", output})

	require.NoError(t, root.Cmd.Execute())

	got := readSchema(t, output)
	assert.Equal(t, []string{"Rent", "Side Income"}, got.Expenses)
	assert.Equal(t, []string{"Side Income"}, got.Incomes)
}
