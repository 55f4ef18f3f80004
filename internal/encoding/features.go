package encoding

import (
	"encoding/json"
	"math"

	"github.com/uzpay-labs/fraudscope/internal/model"
)

// VectorSize is the number of slots the backend model expects.
const VectorSize = 17

// Slot is a single position in the feature vector. A slot without a value
// marshals to JSON null, which is how unmapped categorical values reach the
// backend. NaN from unparseable numeric input serializes the same way.
type Slot struct {
	Value float64
	Valid bool
}

// MarshalJSON implements json.Marshaler.
func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.Valid || math.IsNaN(s.Value) {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// FeatureVector is the ordered numeric input to /predict_fraud.
type FeatureVector [VectorSize]Slot

// Assemble builds the feature vector from a raw transaction input. The slot
// order is fixed by the backend model's training and must never change
// without a matching model retrain. No range or membership validation is
// performed; bad values travel as missing slots.
func Assemble(in model.TransactionInput) FeatureVector {
	return FeatureVector{
		number(in.Amount),
		coded(DomainLocation, in.Location),
		number(float64(in.MerchantID)), // forwarded raw, not table-encoded
		number(float64(in.DeviceID)),   // same
		coded(DomainCardType, in.CardType),
		coded(DomainCurrency, in.Currency),
		coded(DomainStatus, in.Status),
		number(float64(in.PreviousTxnCount)),
		number(in.DistanceKm),
		number(in.TimeSinceLastMin),
		coded(DomainAuthMethod, in.AuthenticationMethod),
		number(float64(in.Velocity)),
		coded(DomainCategory, in.Category),
		number(float64(in.Year)),
		number(float64(in.Month)),
		number(float64(in.Day)),
		number(float64(in.Hour)),
	}
}

func number(f float64) Slot {
	return Slot{Value: f, Valid: true}
}

func coded(domain, value string) Slot {
	code, ok := Lookup(domain, value)
	return Slot{Value: float64(code), Valid: ok}
}
