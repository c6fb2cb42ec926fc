package ingest

import (
	"errors"
	"testing"

	"fjacquet/finance-tracker/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNonNegative(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		want       string
		wantReason string
	}{
		{name: "integer", raw: "1000", want: "1000"},
		{name: "decimal with newline", raw: "12.75\n", want: "12.75"},
		{name: "surrounding spaces", raw: "  5 ", want: "5"},
		{name: "zero", raw: "0", want: "0"},
		{name: "exponent", raw: "1e2", want: "100"},
		{name: "negative", raw: "-1", wantReason: MsgNegative},
		{name: "negative fraction", raw: "-0.01", wantReason: MsgNegative},
		{name: "text", raw: "abc", wantReason: MsgNotANumber},
		{name: "empty", raw: "\n", wantReason: MsgNotANumber},
		{name: "comma decimal", raw: "1,5", wantReason: MsgNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNonNegative(tt.raw)
			if tt.wantReason != "" {
				var inputErr *parsererror.InputError
				require.True(t, errors.As(err, &inputErr))
				assert.Equal(t, tt.wantReason, inputErr.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseNonNegative_NeverNegative(t *testing.T) {
	for _, raw := range []string{"-5", "-1000000", "-0.5", "-1e3"} {
		got, err := ParseNonNegative(raw)
		assert.Error(t, err, raw)
		assert.False(t, got.IsNegative(), raw)
	}
}
