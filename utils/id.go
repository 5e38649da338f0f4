package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewTransactionID fabricates a gateway-style transaction reference. A real
// processor would supply this.
func NewTransactionID() string {
	return fmt.Sprintf("tx_%s", uuid.NewString())
}

// NewObjectName generates a unique storage object name keeping the original
// file extension.
func NewObjectName(ext string) string {
	return fmt.Sprintf("%s%s", uuid.NewString(), ext)
}
