package initializers

import (
	"log"
	"time"

	"github.com/Rovan44/shopfront-api/checkout"
	"github.com/Rovan44/shopfront-api/gateway"
)

var (
	Gateway  *gateway.Client
	Checkout *checkout.Orchestrator
)

// ConnectToGateway builds the remote backend client and the checkout
// orchestrator on top of it.
func ConnectToGateway() {
	baseURL := Getenv("GATEWAY_BASE_URL", "http://localhost:8080/api")
	timeout := GetenvDuration("GATEWAY_TIMEOUT", 10*time.Second)
	delay := GetenvDuration("CHECKOUT_PROCESSING_DELAY", checkout.DefaultProcessingDelay)

	Gateway = gateway.NewClient(baseURL, timeout)
	Checkout = checkout.NewOrchestrator(Gateway, delay)
	log.Println("Gateway client configured for", baseURL)
}
