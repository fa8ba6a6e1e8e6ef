package payments

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod reports a payment method outside the supported set. The
// match is exact; "Esewa" is as unknown as "paypal".
var ErrUnknownMethod = errors.New("unknown payment method")

// ConfigError reports a required environment variable that is absent or
// empty at request time.
type ConfigError struct {
	Variable string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required environment variable %s", e.Variable)
}

// UpstreamError reports a failed gateway call. Body carries the raw upstream
// payload so support can see what the gateway actually said.
type UpstreamError struct {
	Gateway string
	Status  int
	Body    string
	Err     error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil && e.Body != "":
		return fmt.Sprintf("%s initiate decode: %v body=%s", e.Gateway, e.Err, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s initiate request: %v", e.Gateway, e.Err)
	default:
		return fmt.Sprintf("%s initiate failed: http=%d body=%s", e.Gateway, e.Status, e.Body)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }
