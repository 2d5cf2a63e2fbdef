package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedPriceTableScanValueRoundTrip(t *testing.T) {
	table := FixedPriceTable{
		"12x18": {"50": 9500, "100": 16500},
	}

	raw, err := table.Value()
	require.NoError(t, err)

	var decoded FixedPriceTable
	require.NoError(t, decoded.Scan(raw))
	assert.Equal(t, int64(16500), decoded["12x18"]["100"])
}

func TestFixedPriceTableScanNil(t *testing.T) {
	var decoded FixedPriceTable
	require.NoError(t, decoded.Scan(nil))
	assert.Nil(t, decoded)
}

func TestFixedPriceTableScanRejectsUnknownType(t *testing.T) {
	var decoded FixedPriceTable
	assert.Error(t, decoded.Scan(42))
}
