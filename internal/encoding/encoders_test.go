package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_KnownValues(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		value  string
		want   int
	}{
		{"card type UzCard", DomainCardType, "UzCard", 1},
		{"card type Humo", DomainCardType, "Humo", 0},
		{"currency USD", DomainCurrency, "USD", 0},
		{"currency UZS", DomainCurrency, "UZS", 1},
		{"status Successful", DomainStatus, "Successful", 2},
		{"status Failed", DomainStatus, "Failed", 0},
		{"status Reversed", DomainStatus, "Reversed", 1},
		{"auth Biometric", DomainAuthMethod, "Biometric", 1},
		{"auth 2FA", DomainAuthMethod, "2FA", 0},
		{"auth Password", DomainAuthMethod, "Password", 2},
		{"category Transfer", DomainCategory, "Transfer", 3},
		{"category Cash In", DomainCategory, "Cash In", 0},
		{"location Tashkent", DomainLocation, "Tashkent", 10},
		{"location Andijan", DomainLocation, "Andijan", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := Lookup(tt.domain, tt.value)
			assert.True(t, ok)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestLookup_EveryTableEntryRoundTrips(t *testing.T) {
	for domain, table := range Encoders {
		for value, want := range table {
			code, ok := Lookup(domain, value)
			assert.True(t, ok, "%s/%s", domain, value)
			assert.Equal(t, want, code, "%s/%s", domain, value)
		}
	}
}

func TestLookup_UnknownValues(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		value  string
	}{
		{"unknown location", DomainLocation, "Atlantis"},
		{"unknown card type", DomainCardType, "Visa"},
		{"case sensitive", DomainCardType, "uzcard"},
		{"unknown domain", "Merchant_ID", "123"},
		{"empty value", DomainStatus, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := Lookup(tt.domain, tt.value)
			assert.False(t, ok)
			assert.Equal(t, 0, code)
		})
	}
}

func TestValues_CodeOrder(t *testing.T) {
	assert.Equal(t, []string{"Humo", "UzCard"}, Values(DomainCardType))
	assert.Equal(t, []string{"Failed", "Reversed", "Successful"}, Values(DomainStatus))
	assert.Equal(t, []string{"Cash In", "Cash Out", "Payment", "Transfer"}, Values(DomainCategory))
	assert.Nil(t, Values("nope"))
}
