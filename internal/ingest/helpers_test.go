package ingest

import (
	"testing"

	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, b models.Breakdown, name, want string) {
	t.Helper()
	got, ok := b.Get(name)
	require.True(t, ok, "missing %s", name)
	assert.True(t, got.Equal(d(want)), "%s: got %s want %s", name, got, want)
}
