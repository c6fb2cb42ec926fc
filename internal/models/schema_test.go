package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchemaPolicy(t *testing.T) {
	p, err := ParseSchemaPolicy("strict")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	p, err = ParseSchemaPolicy("zero-fill")
	require.NoError(t, err)
	assert.Equal(t, PolicyZeroFill, p)

	_, err = ParseSchemaPolicy("drop")
	assert.Error(t, err)
}

func TestSchemaFromRecord(t *testing.T) {
	r := MonthRecord{
		Expenses: NewBreakdown(Entry{"Extras", d("1")}, Entry{"Utilities", d("2")}),
		Incomes:  NewBreakdown(Entry{"Salary", d("3")}),
	}

	s := SchemaFromRecord(r)

	assert.Equal(t, []string{"Extras", "Utilities"}, s.Expenses)
	assert.Equal(t, []string{"Salary"}, s.Incomes)
	assert.False(t, s.IsEmpty())
	assert.True(t, Schema{}.IsEmpty())
}

func TestDiff(t *testing.T) {
	b := NewBreakdown(Entry{"Extras", d("1")}, Entry{"Travel", d("2")})

	missing, extra := Diff([]string{"Extras", "Utilities"}, b)

	assert.Equal(t, []string{"Utilities"}, missing)
	assert.Equal(t, []string{"Travel"}, extra)
}

func TestSchemaClone(t *testing.T) {
	s := Schema{Expenses: []string{"Extras"}}
	c := s.Clone()
	c.Expenses[0] = "Changed"

	assert.Equal(t, "Extras", s.Expenses[0])
}
