package payments

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const (
	khaltiSandboxURL    = "https://dev.khalti.com/api/v2/epayment/initiate/"
	khaltiProductionURL = "https://khalti.com/api/v2/epayment/initiate/"
)

// Placeholder payer identity for callers that omit the customer fields,
// matching Khalti's sandbox examples.
const (
	defaultCustomerName  = "Test User"
	defaultCustomerEmail = "test@khalti.com"
	defaultCustomerPhone = "9800000001"
)

type khaltiPayload struct {
	ReturnURL         string         `json:"return_url"`
	WebsiteURL        string         `json:"website_url"`
	Amount            int64          `json:"amount"`
	PurchaseOrderID   string         `json:"purchase_order_id"`
	PurchaseOrderName string         `json:"purchase_order_name"`
	CustomerInfo      khaltiCustomer `json:"customer_info"`
}

type khaltiCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type KhaltiAdapter struct {
	SecretKey  string
	ReturnURL  string
	WebsiteURL string
	// InitiateURL points at Khalti's ePayment initiate endpoint. Tests
	// override it with an httptest server.
	InitiateURL string
	client      *resty.Client
}

func NewKhaltiAdapter(cfg Config, client *resty.Client) *KhaltiAdapter {
	url := khaltiSandboxURL
	if cfg.KhaltiLive {
		url = khaltiProductionURL
	}
	return &KhaltiAdapter{
		SecretKey:   cfg.KhaltiSecretKey,
		ReturnURL:   cfg.BaseURL + "/payment-success",
		WebsiteURL:  cfg.BaseURL,
		InitiateURL: url,
		client:      client,
	}
}

// minorUnits converts a major-unit amount to paisa, rounding half away from
// zero. Decimal arithmetic keeps boundary values like 99.995 exact.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CreateSession calls Khalti's initiate API and relays the hosted payment
// page URL. One attempt per request; the resty client carries the timeout.
func (k *KhaltiAdapter) CreateSession(ctx context.Context, order Order) (*Session, error) {
	payload := khaltiPayload{
		ReturnURL:         k.ReturnURL,
		WebsiteURL:        k.WebsiteURL,
		Amount:            minorUnits(order.Amount),
		PurchaseOrderID:   order.TransactionID,
		PurchaseOrderName: order.ProductName,
		CustomerInfo: khaltiCustomer{
			Name:  order.CustomerName,
			Email: order.CustomerEmail,
			Phone: order.CustomerPhone,
		},
	}
	if payload.CustomerInfo.Name == "" {
		payload.CustomerInfo.Name = defaultCustomerName
	}
	if payload.CustomerInfo.Email == "" {
		payload.CustomerInfo.Email = defaultCustomerEmail
	}
	if payload.CustomerInfo.Phone == "" {
		payload.CustomerInfo.Phone = defaultCustomerPhone
	}

	resp, err := k.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Key "+k.SecretKey).
		SetBody(payload).
		Post(k.InitiateURL)
	if err != nil {
		return nil, &UpstreamError{Gateway: "khalti", Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &UpstreamError{Gateway: "khalti", Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	var res struct {
		Pidx       string `json:"pidx"`
		PaymentURL string `json:"payment_url"`
	}
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return nil, &UpstreamError{Gateway: "khalti", Status: resp.StatusCode(), Body: string(resp.Body()), Err: err}
	}
	if res.PaymentURL == "" {
		return nil, &UpstreamError{Gateway: "khalti", Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	return &Session{PaymentURL: res.PaymentURL}, nil
}
