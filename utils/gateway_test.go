package utils

import (
	"strings"
	"testing"

	"github.com/medibook/medibook-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestChargeApproved(t *testing.T) {
	g := NewPaymentGatewayWithRand(0.2, func() float64 { return 0.9 })
	txID, ok := g.Charge(models.MethodCreditCard, 50)
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(txID, "tx_"))
}

func TestChargeDeclined(t *testing.T) {
	g := NewPaymentGatewayWithRand(0.2, func() float64 { return 0.1 })
	txID, ok := g.Charge(models.MethodCreditCard, 50)
	assert.False(t, ok)
	assert.True(t, strings.HasPrefix(txID, "tx_"))
}

func TestFreeChargeNeverDeclined(t *testing.T) {
	// Even a rand source that always lands in the failure band cannot
	// decline a free release.
	g := NewPaymentGatewayWithRand(1.0, func() float64 { return 0.0 })
	_, ok := g.Charge(models.MethodFree, 0)
	assert.True(t, ok)
}

func TestTransactionIDsAreUnique(t *testing.T) {
	g := NewPaymentGateway(0)
	a, _ := g.Charge(models.MethodPix, 10)
	b, _ := g.Charge(models.MethodPix, 10)
	assert.NotEqual(t, a, b)
}
