package main

import (
	"errors"
	"fmt"
	"net/http"

	"sajilopay/internal/payments"

	"github.com/shopspring/decimal"
)

func (app *application) welcomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Welcome to the eSewa & Khalti checkout API"))
}

func (app *application) indexHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "checkout API is running. POST /api/checkout-session to create a payment session.",
	})
}

func (app *application) checkoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	var payload payments.CheckoutRequest
	if err := readJSON(w, r, &payload); err != nil {
		app.missingFieldsResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.missingFieldsResponse(w, r, err)
		return
	}

	// A zero or unparseable amount is as unusable as a missing one.
	amount, err := decimal.NewFromString(payload.Amount.String())
	if err != nil || amount.IsZero() {
		app.missingFieldsResponse(w, r, fmt.Errorf("amount %q is not a usable value", payload.Amount))
		return
	}

	order := payments.Order{
		Amount:        amount,
		ProductName:   payload.ProductName,
		TransactionID: payload.TransactionID,
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
	}

	session, err := app.payments.CreateSession(r.Context(), payload.Method, order)
	if err != nil {
		if errors.Is(err, payments.ErrUnknownMethod) {
			app.invalidMethodResponse(w, r, payload.Method)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}
