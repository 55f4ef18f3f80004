// Package encoding maps raw transaction fields onto the numeric feature
// vector the backend model was trained on.
package encoding

// Categorical domains understood by the encoder tables. The names match the
// column names of the model's training dataset.
const (
	DomainLocation   = "Transaction_Location"
	DomainCardType   = "Card_Type"
	DomainCurrency   = "Transaction_Currency"
	DomainStatus     = "Transaction_Status"
	DomainAuthMethod = "Authentication_Method"
	DomainCategory   = "Transaction_Category"
)

// Encoders holds the training-time integer codes for every categorical
// domain. Merchant and device IDs are numeric already and never pass
// through these tables.
var Encoders = map[string]map[string]int{
	// Partial enumeration; the full region list has to come from the model
	// owner's training metadata.
	DomainLocation: {
		"Andijan": 0, "Bukhara": 1, "Jizzakh": 2, "Karakalpakstan": 3,
		"Khorezm": 4, "Namangan": 5, "Navoiy": 6, "Samarkand": 7,
		"Surkhandarya": 8, "Syrdarya": 9, "Tashkent": 10,
	},

	DomainCardType: {"Humo": 0, "UzCard": 1},

	DomainCurrency: {"USD": 0, "UZS": 1},

	DomainStatus: {
		"Failed":     0,
		"Reversed":   1,
		"Successful": 2,
	},

	DomainAuthMethod: {
		"2FA":       0,
		"Biometric": 1,
		"Password":  2,
	},

	DomainCategory: {
		"Cash In":  0,
		"Cash Out": 1,
		"Payment":  2,
		"Transfer": 3,
	},
}

// Lookup returns the integer code for value within domain. Unknown domains
// and unknown values report ok=false; callers forward a missing slot rather
// than failing.
func Lookup(domain, value string) (int, bool) {
	table, ok := Encoders[domain]
	if !ok {
		return 0, false
	}
	code, ok := table[value]
	return code, ok
}

// Values lists the known values of a domain in code order, for populating
// selection fields.
func Values(domain string) []string {
	table, ok := Encoders[domain]
	if !ok {
		return nil
	}
	out := make([]string, len(table))
	for value, code := range table {
		out[code] = value
	}
	return out
}
