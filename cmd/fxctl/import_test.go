package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRateSheet(t *testing.T) {
	sheet := `from,to,rate,rate_buy,rate_sell,source_reference,notes
USD,IDR,15500,15450,15550,BI-2024-10,
# SGD line added late
SGD, IDR, 11520.25
EUR,IDR,16900,,,,"counter rate, afternoon"
`
	entries, err := readRateSheet(strings.NewReader(sheet))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "USD", entries[0].FromCurrencyCode)
	assert.Equal(t, "15500", entries[0].Rate.String())
	require.NotNil(t, entries[0].RateBuy)
	assert.Equal(t, "15450", entries[0].RateBuy.String())
	require.NotNil(t, entries[0].SourceReference)
	assert.Equal(t, "BI-2024-10", *entries[0].SourceReference)
	assert.Nil(t, entries[0].Notes)

	assert.Equal(t, "IDR", entries[1].ToCurrencyCode)
	assert.Equal(t, "11520.25", entries[1].Rate.String())
	assert.Nil(t, entries[1].RateSell)

	assert.Nil(t, entries[2].RateBuy)
	require.NotNil(t, entries[2].Notes)
	assert.Equal(t, "counter rate, afternoon", *entries[2].Notes)
}

func TestReadRateSheet_WithoutHeader(t *testing.T) {
	entries, err := readRateSheet(strings.NewReader("USD,IDR,15500\n"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReadRateSheet_Errors(t *testing.T) {
	tests := []struct {
		name    string
		sheet   string
		wantErr string
	}{
		{"empty", "", "no rows"},
		{"header only", "from,to,rate\n", "no rows"},
		{"missing rate", "USD,IDR\n", "line 1"},
		{"bad rate", "from,to,rate\nUSD,IDR,abc\n", `line 2: invalid rate "abc"`},
		{"bad buy rate", "USD,IDR,15500,x\n", "rate_buy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readRateSheet(strings.NewReader(tt.sheet))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
