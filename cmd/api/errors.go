package main

import "net/http"

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (app *application) missingFieldsResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnf("bad request: %s path: %s error: %s", r.Method, r.URL.Path, err)

	writeJSON(w, http.StatusBadRequest, &errorResponse{Error: "Missing required fields"})
}

func (app *application) invalidMethodResponse(w http.ResponseWriter, r *http.Request, method string) {
	app.logger.Warnf("invalid payment method: %q path: %s", method, r.URL.Path)

	writeJSON(w, http.StatusBadRequest, &errorResponse{Error: "Invalid payment method"})
}

// internalServerError is the single place a checkout 500 is produced.
// Everything past input validation funnels here: missing env vars, signing
// failures, Khalti network and HTTP errors.
func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err)

	details := "Unknown error"
	if err != nil && err.Error() != "" {
		details = err.Error()
	}

	writeJSON(w, http.StatusInternalServerError, &errorResponse{
		Error:   "Error creating payment session",
		Details: details,
	})
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnf("unauthorized basic error: %s path: %s error: %s", r.Method, r.URL.Path, err)

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
	writeJSON(w, http.StatusUnauthorized, &errorResponse{Error: "unauthorized"})
}
