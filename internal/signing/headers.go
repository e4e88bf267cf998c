package signing

import "net/http"

// Credentials holds the API key and shared secret issued by Banxa for
// one merchant account.
type Credentials struct {
	APIKey string
	Secret string
}

// BuildHeaders returns the full header set for a signed Banxa request:
// JSON content negotiation plus the Bearer Authorization value.
func BuildHeaders(creds Credentials, method, path string, nonce int64, body string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("Authorization", AuthHeader(creds.APIKey, creds.Secret, method, path, nonce, body))
	return h
}
