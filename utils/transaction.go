package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateTransactionID builds a client-side placeholder id for the simulated
// payment providers, e.g. TXN17254839201234567.
func GenerateTransactionID() string {
	return fmt.Sprintf("TXN%d%d", time.Now().UnixMilli(), rand.Intn(10000))
}
