package utils

import (
	"math/rand"

	"github.com/medibook/medibook-backend/models"
)

// PaymentGateway simulates a card processor. There is no external
// integration; a configurable share of non-free charges is declined so the
// failure path stays exercised end to end.
type PaymentGateway struct {
	FailureRate float64
	randFn      func() float64
}

// NewPaymentGateway builds the default simulated gateway, declining roughly
// one in five non-free charges.
func NewPaymentGateway(failureRate float64) *PaymentGateway {
	return &PaymentGateway{FailureRate: failureRate, randFn: rand.Float64}
}

// NewPaymentGatewayWithRand injects the random source, for tests.
func NewPaymentGatewayWithRand(failureRate float64, randFn func() float64) *PaymentGateway {
	return &PaymentGateway{FailureRate: failureRate, randFn: randFn}
}

// Charge returns a fabricated transaction id and whether the simulated
// processor accepted the charge. Free releases always succeed.
func (g *PaymentGateway) Charge(method models.PaymentMethod, amount float64) (string, bool) {
	txID := NewTransactionID()
	if method == models.MethodFree {
		return txID, true
	}
	if g.randFn() < g.FailureRate {
		return txID, false
	}
	return txID, true
}
