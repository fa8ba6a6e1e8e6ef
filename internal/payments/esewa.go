package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// esewaSignedFields is part of the external contract: eSewa verifies the
// signature over exactly these fields, in this order.
const esewaSignedFields = "total_amount,transaction_uuid,product_code"

type EsewaAdapter struct {
	MerchantCode string
	SecretKey    string
	SuccessURL   string
	FailureURL   string
}

func NewEsewaAdapter(cfg Config) *EsewaAdapter {
	return &EsewaAdapter{
		MerchantCode: cfg.EsewaMerchantCode,
		SecretKey:    cfg.EsewaSecretKey,
		SuccessURL:   cfg.BaseURL + "/payment-success",
		FailureURL:   cfg.BaseURL + "/payment-failure",
	}
}

// CreateSession builds and signs the redirect payload. The server never
// calls eSewa for this flow; the signature is what stops the client from
// tampering with the amount after signing.
func (e *EsewaAdapter) CreateSession(ctx context.Context, order Order) (*Session, error) {
	amount := order.Amount.InexactFloat64()

	// total must render exactly the numeric value the client posts back,
	// or eSewa rejects the signature. "500.00" and "500" are not the same
	// string to its verifier.
	total := strconv.FormatFloat(amount, 'f', -1, 64)
	transactionUUID := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString())

	// raw is formatted as per esewa docs.
	raw := fmt.Sprintf("total_amount=%s,transaction_uuid=%s,product_code=%s", total, transactionUUID, e.MerchantCode)
	signature := Sign([]byte(e.SecretKey), raw)

	return &Session{
		Amount: amount,
		Esewa: &EsewaConfig{
			Amount:           amount,
			TotalAmount:      amount,
			TransactionUUID:  transactionUUID,
			ProductCode:      e.MerchantCode,
			SuccessURL:       e.SuccessURL,
			FailureURL:       e.FailureURL,
			SignedFieldNames: esewaSignedFields,
			Signature:        signature,
		},
	}, nil
}

// Sign computes base64(HMAC-SHA256(key, message)), the signature scheme
// eSewa's ePay v2 form expects.
func Sign(key []byte, message string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
