package payments

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CheckoutRequest is the body of POST /api/checkout-session. Amount is a
// json.Number so callers may send 500 or "500" interchangeably.
type CheckoutRequest struct {
	Amount        json.Number `json:"amount" validate:"required"`
	ProductName   string      `json:"productName" validate:"required"`
	TransactionID string      `json:"transactionId" validate:"required"`
	Method        string      `json:"method" validate:"required"`

	// Optional payer identity forwarded to Khalti. Placeholder values
	// apply when omitted (see khalti.go).
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}

// Order is a validated checkout request with the amount parsed. It is what
// the gateway adapters consume.
type Order struct {
	Amount        decimal.Decimal
	ProductName   string
	TransactionID string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// EsewaConfig is the signed form-field set the client posts to eSewa's ePay
// v2 form. Field names and JSON keys follow eSewa's docs.
type EsewaConfig struct {
	Amount                float64 `json:"amount"`
	TaxAmount             float64 `json:"tax_amount"`
	TotalAmount           float64 `json:"total_amount"`
	TransactionUUID       string  `json:"transaction_uuid"`
	ProductCode           string  `json:"product_code"`
	ProductServiceCharge  float64 `json:"product_service_charge"`
	ProductDeliveryCharge float64 `json:"product_delivery_charge"`
	SuccessURL            string  `json:"success_url"`
	FailureURL            string  `json:"failure_url"`
	SignedFieldNames      string  `json:"signed_field_names"`
	Signature             string  `json:"signature"`
}

// Session is the success body of a checkout request. Exactly one of Esewa or
// PaymentURL is set, depending on which gateway handled the order.
type Session struct {
	Amount     float64      `json:"amount,omitempty"`
	Esewa      *EsewaConfig `json:"esewaConfig,omitempty"`
	PaymentURL string       `json:"khaltiPaymentUrl,omitempty"`
}
