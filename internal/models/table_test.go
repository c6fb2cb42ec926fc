package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return &Table{
		Columns: []string{"Month", "Budget", "Extras", "Salary"},
		Months:  []string{"1/2023", "2/2023"},
		Values: [][]decimal.Decimal{
			{d("1000"), d("200"), d("5000")},
			{d("1200.5"), d("0"), d("5100")},
		},
	}
}

func TestTable_Column(t *testing.T) {
	tbl := sampleTable()

	col, err := tbl.Column("Extras")
	require.NoError(t, err)
	assert.Equal(t, []string{"200", "0"}, []string{col[0].String(), col[1].String()})

	_, err = tbl.Column("Month")
	assert.Error(t, err)
}

func TestTable_Records(t *testing.T) {
	records := sampleTable().Records()

	assert.Equal(t, [][]string{
		{"Month", "Budget", "Extras", "Salary"},
		{"1/2023", "1000", "200", "5000"},
		{"2/2023", "1200.5", "0", "5100"},
	}, records)
}

func TestTable_NumericColumns(t *testing.T) {
	tbl := sampleTable()

	assert.Equal(t, []string{"Budget", "Extras", "Salary"}, tbl.NumericColumns())
	assert.Equal(t, 2, tbl.Len())
}
