package models

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

type PaymentMode struct {
	ID       int64  `json:"id"`
	Mode     string `json:"mode"`
	IsActive bool   `json:"isActive"`
}

// Payment is the record the backend returns after creating a payment.
type Payment struct {
	ID            int64         `json:"id"`
	PaymentDate   string        `json:"paymentDate"`
	PaymentMode   string        `json:"paymentMode"`
	TransactionID *string       `json:"transactionId"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	Remarks       string        `json:"remarks"`
}

// CheckoutRequest is the payment-creation body. TransactionID stays nil for
// Cash On Delivery; Remarks carries the delivery address in that case.
type CheckoutRequest struct {
	PaymentModeID int64   `json:"paymentModeId"`
	TransactionID *string `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Remarks       string  `json:"remarks"`
}

type DashboardStats struct {
	TotalProducts     int64      `json:"totalProducts"`
	Categories        []Category `json:"categories"`
	TotalValue        float64    `json:"totalValue"`
	TotalItemsInStock int64      `json:"totalItemsInStock"`
	RecentPayments    []Payment  `json:"recentPayments"`
}
