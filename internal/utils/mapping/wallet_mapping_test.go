package mapping_test

import (
	"testing"

	"github.com/buspago/buspago_backend/internal/core/domain"
	"github.com/buspago/buspago_backend/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceRoundTrip(t *testing.T) {
	for _, balance := range []int64{0, 1, 2500, domain.DefaultBalance, 987654321} {
		assert.Equal(t, balance, mapping.DecodeBalance(mapping.EncodeBalance(balance)))
	}
}

func TestDecodeBalance_Degrades(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "not a number", text: "abc"},
		{name: "json garbage", text: `{"balance": 5}`},
		{name: "float", text: "2500.50"},
		{name: "negative", text: "-100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, domain.DefaultBalance, mapping.DecodeBalance(tc.text))
		})
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	history := []domain.TripRecord{
		{Date: "1 March 2026, 08:15", Bus: "205", Route: "Ruta 2 - Norte", Amount: 2500},
		{Date: "28 February 2026, 17:40", Bus: "101", Route: "Ruta 1 - Centro", Amount: 2500},
	}

	encoded, err := mapping.EncodeHistory(history)
	require.NoError(t, err)

	decoded := mapping.DecodeHistory(encoded)
	assert.Equal(t, history, decoded)
}

func TestHistoryRoundTrip_Empty(t *testing.T) {
	encoded, err := mapping.EncodeHistory(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)

	decoded := mapping.DecodeHistory(encoded)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}

func TestDecodeHistory_Degrades(t *testing.T) {
	for _, text := range []string{"", "not json", `{"trips": []}`, "null"} {
		decoded := mapping.DecodeHistory(text)
		assert.NotNil(t, decoded, "text %q", text)
		assert.Empty(t, decoded, "text %q", text)
	}
}

// Corrupt entries degrade independently: a broken ledger never resets
// the balance, and vice versa.
func TestDecodeWalletState_IndependentDefaults(t *testing.T) {
	state := mapping.DecodeWalletState("4200", "corrupt")
	assert.Equal(t, int64(4200), state.Balance)
	assert.Empty(t, state.History)

	state = mapping.DecodeWalletState("corrupt", `[{"date":"1 March 2026, 08:15","bus":"205","route":"Ruta 2 - Norte","amount":2500}]`)
	assert.Equal(t, domain.DefaultBalance, state.Balance)
	require.Len(t, state.History, 1)
	assert.Equal(t, "205", state.History[0].Bus)
}
