// Package model defines the domain types shared across the client.
package model

import "time"

// TransactionInput holds the raw field values for a single prediction
// request. It is built fresh per submission and never mutated after the
// request completes.
type TransactionInput struct {
	Location             string
	CardType             string
	Currency             string
	Status               string
	AuthenticationMethod string
	Category             string
	Amount               float64
	DistanceKm           float64
	TimeSinceLastMin     float64
	MerchantID           int
	DeviceID             int
	PreviousTxnCount     int
	Velocity             int
	Year                 int
	Month                int
	Day                  int
	Hour                 int
}

// SetTimestamp decomposes a transaction timestamp into the calendar
// components the backend model was trained on.
func (t *TransactionInput) SetTimestamp(ts time.Time) {
	t.Year = ts.Year()
	t.Month = int(ts.Month())
	t.Day = ts.Day()
	t.Hour = ts.Hour()
}

// Prediction is the backend's verdict for one feature vector. IsFraud is a
// pointer so a response that omits the field can be told apart from a
// legitimate zero.
type Prediction struct {
	IsFraud     *int    `json:"is_fraud"`
	Probability float64 `json:"probability"`
}

// Fraudulent reports whether the backend flagged the transaction.
func (p Prediction) Fraudulent() bool {
	return p.IsFraud != nil && *p.IsFraud == 1
}
