package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/parsererror"
	"fjacquet/finance-tracker/internal/store"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// ErrInputClosed is returned when input ends before every prompt was
// answered.
var ErrInputClosed = errors.New("input closed before all values were entered")

var warn = color.New(color.FgYellow)

// Prompter drives interactive entry over a line-oriented reader.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger logging.Logger
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer, logger logging.Logger) *Prompter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Prompter{in: bufio.NewReader(in), out: out, logger: logger}
}

// ReadNonNegative prompts until a non-negative number is entered. Rejected
// entries are explained and asked again with no limit; only end of input or
// a cancelled context stops the loop.
func (p *Prompter) ReadNonNegative(ctx context.Context, prompt string) (decimal.Decimal, error) {
	for {
		if err := ctx.Err(); err != nil {
			return decimal.Zero, err
		}
		fmt.Fprint(p.out, prompt)

		line, err := p.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && strings.TrimSpace(line) != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(p.out)
				return decimal.Zero, ErrInputClosed
			}
			return decimal.Zero, fmt.Errorf("error reading input: %w", err)
		}

		value, perr := ParseNonNegative(line)
		if perr == nil {
			return value, nil
		}

		var inputErr *parsererror.InputError
		if errors.As(perr, &inputErr) {
			_, _ = warn.Fprintln(p.out, inputErr.Reason)
			p.logger.Debug("Rejected input", logging.F("value", inputErr.Value))
			continue
		}
		return decimal.Zero, perr
	}
}

// Collect asks for every period of the profile and appends one record per
// period to s.
func (p *Prompter) Collect(ctx context.Context, profile Profile, s *store.RecordStore) error {
	for _, period := range profile.Periods {
		rec, err := p.collectPeriod(ctx, profile, period)
		if err != nil {
			return fmt.Errorf("collecting %s: %w", period.Label, err)
		}
		if err := s.Append(rec); err != nil {
			return err
		}
		p.logger.Debug("Collected month", logging.F(logging.FieldMonth, period.Label))
	}

	p.logger.Info("Interactive entry completed", logging.F(logging.FieldCount, len(profile.Periods)))
	return nil
}

func (p *Prompter) collectPeriod(ctx context.Context, profile Profile, period Period) (models.MonthRecord, error) {
	rec := models.MonthRecord{Month: period.Label}

	budget, err := p.ReadNonNegative(ctx, budgetPrompt(period))
	if err != nil {
		return rec, err
	}
	rec.Budget = budget

	for _, category := range profile.Expenses {
		v, err := p.ReadNonNegative(ctx, expensePrompt(category, period))
		if err != nil {
			return rec, err
		}
		rec.Expenses.Set(category, v)
	}
	for _, source := range profile.Incomes {
		v, err := p.ReadNonNegative(ctx, incomePrompt(source, period))
		if err != nil {
			return rec, err
		}
		rec.Incomes.Set(source, v)
	}
	return rec, nil
}
