package signing

import (
	"strings"
	"testing"
)

func TestCanonicalStringOmitsBodyLineWhenEmpty(t *testing.T) {
	got := CanonicalString("GET", "api/fiats/buy", 1700000000, "")
	want := "GET\napi/fiats/buy\n1700000000"
	if got != want {
		t.Errorf("canonical string mismatch\n  got:  %q\n  want: %q", got, want)
	}
}

func TestCanonicalStringIncludesBody(t *testing.T) {
	body := `{"account_reference":"ref-1"}`
	got := CanonicalString("POST", "api/orders", 1700000000, body)
	want := "POST\napi/orders\n1700000000\n" + body
	if got != want {
		t.Errorf("canonical string mismatch\n  got:  %q\n  want: %q", got, want)
	}
}

func TestBuildHMACSignature_ReferenceVector(t *testing.T) {
	// Precomputed: HMAC-SHA256("GET\napi/fiats/buy\n1700000000", "s3cr3t").
	expected := "0c4015051d69cf8e7bc4148ce1a2e96f2d70a3e3a214456b3b98d6a0d78a6109"

	sig := BuildHMACSignature("s3cr3t", "GET", "api/fiats/buy", 1700000000, "")
	if sig != expected {
		t.Errorf("signature mismatch\n  got:  %s\n  want: %s", sig, expected)
	}
}

func TestBuildHMACSignature_BodyVector(t *testing.T) {
	body := `{"account_reference":"ref-1","source":"USD","source_amount":"100","target":"ETH"}`
	expected := "46fa03d84d3c36377f55f0a2dc132fb70d1aa3d95cd3873bb77e7b2f26aac02d"

	sig := BuildHMACSignature("s3cr3t", "POST", "api/orders", 1700000000, body)
	if sig != expected {
		t.Errorf("signature mismatch\n  got:  %s\n  want: %s", sig, expected)
	}
}

func TestBuildHMACSignature_Deterministic(t *testing.T) {
	a := BuildHMACSignature("s3cr3t", "GET", "api/prices?source=USD", 1700000000, "")
	b := BuildHMACSignature("s3cr3t", "GET", "api/prices?source=USD", 1700000000, "")
	if a != b {
		t.Errorf("identical inputs produced different signatures: %s vs %s", a, b)
	}
}

func TestBuildHMACSignature_InputSensitivity(t *testing.T) {
	base := BuildHMACSignature("s3cr3t", "GET", "api/fiats/buy", 1700000000, "")

	variants := map[string]string{
		"method": BuildHMACSignature("s3cr3t", "POST", "api/fiats/buy", 1700000000, ""),
		"path":   BuildHMACSignature("s3cr3t", "GET", "api/fiats/sell", 1700000000, ""),
		"nonce":  BuildHMACSignature("s3cr3t", "GET", "api/fiats/buy", 1700000001, ""),
		"body":   BuildHMACSignature("s3cr3t", "GET", "api/fiats/buy", 1700000000, "{}"),
		"secret": BuildHMACSignature("s3cr3u", "GET", "api/fiats/buy", 1700000000, ""),
	}
	for name, sig := range variants {
		if sig == base {
			t.Errorf("changing %s did not change the signature", name)
		}
	}
}

func TestAuthHeaderFormat(t *testing.T) {
	digest := "0c4015051d69cf8e7bc4148ce1a2e96f2d70a3e3a214456b3b98d6a0d78a6109"
	got := AuthHeader("key-1", "s3cr3t", "GET", "api/fiats/buy", 1700000000, "")
	want := "Bearer key-1:" + digest + ":1700000000"
	if got != want {
		t.Errorf("auth header mismatch\n  got:  %s\n  want: %s", got, want)
	}
}

func TestBuildHeaders(t *testing.T) {
	creds := Credentials{APIKey: "key-1", Secret: "s3cr3t"}
	h := BuildHeaders(creds, "GET", "api/fiats/buy", 1700000000, "")

	if got := h.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if got := h.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q, want application/json", got)
	}
	auth := h.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer key-1:") || !strings.HasSuffix(auth, ":1700000000") {
		t.Errorf("unexpected Authorization header: %s", auth)
	}
}

func TestVerifyAuthHeader(t *testing.T) {
	header := AuthHeader("key-1", "s3cr3t", "POST", "webhooks/banxa", 1700000000, `{"order_id":"o1"}`)

	if !VerifyAuthHeader("key-1", "s3cr3t", header, "POST", "webhooks/banxa", `{"order_id":"o1"}`) {
		t.Error("valid header did not verify")
	}
	if VerifyAuthHeader("key-1", "s3cr3t", header, "POST", "webhooks/banxa", `{"order_id":"o2"}`) {
		t.Error("tampered body verified")
	}
	if VerifyAuthHeader("key-2", "s3cr3t", header, "POST", "webhooks/banxa", `{"order_id":"o1"}`) {
		t.Error("wrong api key verified")
	}
	if VerifyAuthHeader("key-1", "s3cr3t", "Bearer garbage", "POST", "webhooks/banxa", `{"order_id":"o1"}`) {
		t.Error("malformed header verified")
	}
	if VerifyAuthHeader("key-1", "s3cr3t", strings.TrimPrefix(header, "Bearer "), "POST", "webhooks/banxa", `{"order_id":"o1"}`) {
		t.Error("header without Bearer prefix verified")
	}
}
