package payments

// Config carries the gateway credentials and the callback base URL. It is
// built once at startup from the environment and treated as immutable.
type Config struct {
	BaseURL           string
	EsewaMerchantCode string
	EsewaSecretKey    string
	KhaltiSecretKey   string
	KhaltiLive        bool
}

// Validate reports the first missing required variable. It runs at the start
// of every checkout request, so a bad deployment surfaces as a 500 on the
// request rather than a half-configured gateway call.
func (c Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"BASE_URL", c.BaseURL},
		{"ESEWA_MERCHANT_CODE", c.EsewaMerchantCode},
		{"ESEWA_SECRET_KEY", c.EsewaSecretKey},
		{"KHALTI_SECRET_KEY", c.KhaltiSecretKey},
	}
	for _, v := range required {
		if v.value == "" {
			return &ConfigError{Variable: v.name}
		}
	}
	return nil
}
