package models

import "github.com/shopspring/decimal"

// Entry is one named amount in a Breakdown.
type Entry struct {
	Name   string
	Amount decimal.Decimal
}

// Breakdown maps category or source names to amounts, preserving the order
// in which names were first set.
type Breakdown struct {
	entries []Entry
	index   map[string]int
}

// NewBreakdown builds a Breakdown from entries in order. A repeated name
// overwrites the earlier amount but keeps the earlier position.
func NewBreakdown(entries ...Entry) Breakdown {
	var b Breakdown
	for _, e := range entries {
		b.Set(e.Name, e.Amount)
	}
	return b
}

// Set assigns amount to name.
func (b *Breakdown) Set(name string, amount decimal.Decimal) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[name]; ok {
		b.entries[i].Amount = amount
		return
	}
	b.index[name] = len(b.entries)
	b.entries = append(b.entries, Entry{Name: name, Amount: amount})
}

// Get returns the amount for name and whether it is present.
func (b Breakdown) Get(name string) (decimal.Decimal, bool) {
	i, ok := b.index[name]
	if !ok {
		return decimal.Zero, false
	}
	return b.entries[i].Amount, true
}

// Has reports whether name is present.
func (b Breakdown) Has(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Keys returns the names in insertion order.
func (b Breakdown) Keys() []string {
	keys := make([]string, len(b.entries))
	for i, e := range b.entries {
		keys[i] = e.Name
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (b Breakdown) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

// Len is the number of names.
func (b Breakdown) Len() int {
	return len(b.entries)
}

// Total sums every amount.
func (b Breakdown) Total() decimal.Decimal {
	amounts := make([]decimal.Decimal, len(b.entries))
	for i, e := range b.entries {
		amounts[i] = e.Amount
	}
	return Sum(amounts)
}

// Clone returns an independent copy.
func (b Breakdown) Clone() Breakdown {
	return NewBreakdown(b.entries...)
}
