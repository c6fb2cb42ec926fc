package models

import (
	"fmt"
	"slices"
)

// SchemaPolicy decides what happens when a month's keys differ from the
// declared schema.
type SchemaPolicy string

const (
	// PolicyZeroFill treats missing keys as zero and appends unseen keys to
	// the schema.
	PolicyZeroFill SchemaPolicy = "zero-fill"
	// PolicyStrict rejects any month whose keys differ from the schema.
	PolicyStrict SchemaPolicy = "strict"
)

// ParseSchemaPolicy validates a policy name.
func ParseSchemaPolicy(s string) (SchemaPolicy, error) {
	switch SchemaPolicy(s) {
	case PolicyZeroFill, PolicyStrict:
		return SchemaPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown schema policy %q (must be %q or %q)", s, PolicyZeroFill, PolicyStrict)
	}
}

// Schema is the ordered list of expense categories and income sources that
// every projection of the store uses.
type Schema struct {
	Expenses []string `yaml:"expenses" mapstructure:"expenses"`
	Incomes  []string `yaml:"incomes" mapstructure:"incomes"`
}

// IsEmpty reports whether no keys are declared.
func (s Schema) IsEmpty() bool {
	return len(s.Expenses) == 0 && len(s.Incomes) == 0
}

// Clone returns an independent copy.
func (s Schema) Clone() Schema {
	return Schema{
		Expenses: slices.Clone(s.Expenses),
		Incomes:  slices.Clone(s.Incomes),
	}
}

// SchemaFromRecord declares a schema from one record's keys.
func SchemaFromRecord(r MonthRecord) Schema {
	return Schema{
		Expenses: r.Expenses.Keys(),
		Incomes:  r.Incomes.Keys(),
	}
}

// Diff returns the declared keys absent from b and the keys of b that are
// not declared.
func Diff(declared []string, b Breakdown) (missing, extra []string) {
	for _, k := range declared {
		if !b.Has(k) {
			missing = append(missing, k)
		}
	}
	for _, k := range b.Keys() {
		if !slices.Contains(declared, k) {
			extra = append(extra, k)
		}
	}
	return missing, extra
}
