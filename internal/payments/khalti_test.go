package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKhaltiTestAdapter(url string) *KhaltiAdapter {
	adapter := NewKhaltiAdapter(testConfig(), resty.New().SetTimeout(2*time.Second))
	adapter.InitiateURL = url
	return adapter
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount string
		want   int64
	}{
		{"500", 50000},
		{"1", 100},
		{"100.5", 10050},
		{"99.995", 10000},
		{"99.994", 9999},
		{"0.005", 1},
		{"0.004", 0},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.amount)
		require.NoError(t, err)
		assert.Equal(t, tc.want, minorUnits(d), "amount %s", tc.amount)
	}
}

func TestKhaltiCreateSession(t *testing.T) {
	var got khaltiPayload
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"pidx":        "bZQLD9wRVWo4CdESSfuSsB",
			"payment_url": "https://test-pay.khalti.com/?pidx=bZQLD9wRVWo4CdESSfuSsB",
		})
	}))
	defer srv.Close()

	adapter := newKhaltiTestAdapter(srv.URL)

	amount, err := decimal.NewFromString("100.5")
	require.NoError(t, err)

	sess, err := adapter.CreateSession(context.Background(), Order{
		Amount:        amount,
		ProductName:   "Book",
		TransactionID: "tx1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Key khalti-secret", gotAuth)
	assert.Equal(t, int64(10050), got.Amount)
	assert.Equal(t, "tx1", got.PurchaseOrderID)
	assert.Equal(t, "Book", got.PurchaseOrderName)
	assert.Equal(t, "https://example.com/payment-success", got.ReturnURL)
	assert.Equal(t, "https://example.com", got.WebsiteURL)

	// Placeholder identity applies when the caller omits customer fields.
	assert.Equal(t, defaultCustomerName, got.CustomerInfo.Name)
	assert.Equal(t, defaultCustomerEmail, got.CustomerInfo.Email)
	assert.Equal(t, defaultCustomerPhone, got.CustomerInfo.Phone)

	assert.Equal(t, "https://test-pay.khalti.com/?pidx=bZQLD9wRVWo4CdESSfuSsB", sess.PaymentURL)
	assert.Nil(t, sess.Esewa)
}

func TestKhaltiCustomerPassthrough(t *testing.T) {
	var got khaltiPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"payment_url": "https://test-pay.khalti.com/?pidx=x"})
	}))
	defer srv.Close()

	adapter := newKhaltiTestAdapter(srv.URL)

	_, err := adapter.CreateSession(context.Background(), Order{
		Amount:        decimal.NewFromInt(10),
		CustomerName:  "Sita Sharma",
		CustomerEmail: "sita@example.com",
		CustomerPhone: "9841234567",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sita Sharma", got.CustomerInfo.Name)
	assert.Equal(t, "sita@example.com", got.CustomerInfo.Email)
	assert.Equal(t, "9841234567", got.CustomerInfo.Phone)
}

func TestKhaltiUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Invalid token."}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	adapter := newKhaltiTestAdapter(srv.URL)

	_, err := adapter.CreateSession(context.Background(), Order{Amount: decimal.NewFromInt(10)})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.Status)
	assert.Contains(t, upstream.Body, "Invalid token.")
	assert.Contains(t, err.Error(), "Invalid token.")
}

func TestKhaltiMissingPaymentURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"pidx": "bZQLD9wRVWo4CdESSfuSsB"})
	}))
	defer srv.Close()

	adapter := newKhaltiTestAdapter(srv.URL)

	_, err := adapter.CreateSession(context.Background(), Order{Amount: decimal.NewFromInt(10)})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Contains(t, upstream.Body, "pidx")
}

func TestKhaltiNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before the call, so the dial fails

	adapter := newKhaltiTestAdapter(srv.URL)

	_, err := adapter.CreateSession(context.Background(), Order{Amount: decimal.NewFromInt(10)})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Zero(t, upstream.Status)
	assert.Error(t, upstream.Unwrap())
}
