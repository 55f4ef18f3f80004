package encoding

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzpay-labs/fraudscope/internal/model"
)

func sampleInput() model.TransactionInput {
	in := model.TransactionInput{
		Amount:               250000.50,
		Location:             "Tashkent",
		MerchantID:           4521,
		DeviceID:             88,
		CardType:             "UzCard",
		Currency:             "USD",
		Status:               "Successful",
		PreviousTxnCount:     14,
		DistanceKm:           3.2,
		TimeSinceLastMin:     42.5,
		AuthenticationMethod: "Biometric",
		Velocity:             2,
		Category:             "Transfer",
	}
	in.SetTimestamp(time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC))
	return in
}

func TestAssemble_OrderAndValues(t *testing.T) {
	v := Assemble(sampleInput())

	want := []float64{
		250000.50, // amount
		10,        // Tashkent
		4521,      // merchant ID, raw
		88,        // device ID, raw
		1,         // UzCard
		0,         // USD
		2,         // Successful
		14,        // previous transaction count
		3.2,       // distance km
		42.5,      // minutes since last
		1,         // Biometric
		2,         // velocity
		3,         // Transfer
		2024, 3, 15, 14,
	}

	require.Len(t, want, VectorSize)
	for i, w := range want {
		assert.True(t, v[i].Valid, "slot %d", i)
		assert.InDelta(t, w, v[i].Value, 1e-9, "slot %d", i)
	}
}

func TestAssemble_Pure(t *testing.T) {
	in := sampleInput()
	first := Assemble(in)
	second := Assemble(in)
	assert.Equal(t, first, second)
}

func TestAssemble_UnmappedCategoricalBecomesMissingSlot(t *testing.T) {
	in := sampleInput()
	in.Location = "Samarqand viloyati" // not in the partial region table
	in.CardType = "Visa"

	v := Assemble(in)

	assert.False(t, v[1].Valid)
	assert.False(t, v[4].Valid)
	// Everything else still carries a value.
	assert.True(t, v[0].Valid)
	assert.True(t, v[5].Valid)
}

func TestTimestampDecomposition(t *testing.T) {
	var in model.TransactionInput
	in.SetTimestamp(time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC))

	assert.Equal(t, 2024, in.Year)
	assert.Equal(t, 3, in.Month)
	assert.Equal(t, 15, in.Day)
	assert.Equal(t, 14, in.Hour)
}

func TestFeatureVector_JSONMissingSlotsAreNull(t *testing.T) {
	in := sampleInput()
	in.Location = "Mars"

	data, err := json.Marshal(Assemble(in))
	require.NoError(t, err)

	var decoded []*float64
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, VectorSize)

	assert.Nil(t, decoded[1], "unmapped location serializes as null")
	require.NotNil(t, decoded[0])
	assert.InDelta(t, 250000.50, *decoded[0], 1e-9)
}

func TestFeatureVector_JSONNaNIsNull(t *testing.T) {
	in := sampleInput()
	in.Amount = math.NaN() // unparseable form input travels as NaN

	data, err := json.Marshal(Assemble(in))
	require.NoError(t, err)

	var decoded []*float64
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded[0])
}
