package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Nonce returns a fresh request nonce: the current Unix timestamp in
// seconds. Every outbound request must mint its own nonce; Banxa
// rejects a reused nonce as a replay.
func Nonce() int64 {
	return time.Now().Unix()
}

// CanonicalString builds the string Banxa expects to be signed.
//
// The layout is: method + "\n" + path + "\n" + nonce, with
// "\n" + body appended only when a body is present. For GET requests
// with filters, path must already include the encoded query string.
func CanonicalString(method, path string, nonce int64, body string) string {
	var sb strings.Builder
	sb.WriteString(method)
	sb.WriteByte('\n')
	sb.WriteString(path)
	sb.WriteByte('\n')
	sb.WriteString(strconv.FormatInt(nonce, 10))
	if body != "" {
		sb.WriteByte('\n')
		sb.WriteString(body)
	}
	return sb.String()
}

// BuildHMACSignature computes the hex-encoded HMAC-SHA256 digest of the
// canonical string, keyed with the shared secret. The signature is a
// pure function of its inputs: the same method, path, nonce, body, and
// secret always produce the same digest.
//
// The body string passed here must be byte-for-byte identical to the
// body sent on the wire, or Banxa rejects the request.
func BuildHMACSignature(secret, method, path string, nonce int64, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(CanonicalString(method, path, nonce, body)))
	return hex.EncodeToString(mac.Sum(nil))
}

// AuthHeader returns the Authorization header value for a signed
// request: "Bearer {apiKey}:{hexSignature}:{nonce}".
func AuthHeader(apiKey, secret, method, path string, nonce int64, body string) string {
	sig := BuildHMACSignature(secret, method, path, nonce, body)
	return "Bearer " + apiKey + ":" + sig + ":" + strconv.FormatInt(nonce, 10)
}

// VerifyAuthHeader checks an inbound Authorization header against a
// signature recomputed from the received request. Banxa signs its
// webhook deliveries with the same scheme it expects on API calls, so
// the header splits into key, hex digest, and nonce.
//
// Comparison goes through hmac.Equal so digest bytes do not leak
// through timing. Any malformed header verifies false.
func VerifyAuthHeader(apiKey, secret, header, method, path, body string) bool {
	value, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	parts := strings.Split(value, ":")
	if len(parts) != 3 || parts[0] != apiKey {
		return false
	}
	nonce, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return false
	}
	expected := BuildHMACSignature(secret, method, path, nonce, body)
	return hmac.Equal([]byte(expected), []byte(parts[1]))
}
