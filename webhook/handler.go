// Package webhook handles inbound order-status notifications from
// Banxa. Persistence is delegated to a caller-supplied OrderStore; the
// handlers own no state of their own.
package webhook

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/longmengua/banxa-payment-intergration/internal/signing"
)

// Ack is the acknowledgement returned to Banxa after an upsert
// delivery. Status is the boolean-string flag the provider expects;
// Error carries the failure detail that would otherwise be swallowed.
type Ack struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Handler dispatches webhook events to an OrderStore.
type Handler struct {
	store OrderStore
	creds signing.Credentials
	log   *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.log = l
	}
}

// WithSignatureVerification enables verification of the Authorization
// header Banxa attaches to deliveries, using the same key and secret
// the API client signs with. Without this option deliveries are
// accepted unverified.
func WithSignatureVerification(apiKey, secret string) HandlerOption {
	return func(h *Handler) {
		h.creds = signing.Credentials{APIKey: apiKey, Secret: secret}
	}
}

// NewHandler creates a webhook handler backed by the given store.
func NewHandler(store OrderStore, opts ...HandlerOption) *Handler {
	h := &Handler{store: store, log: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Upsert records the event through the store and reports the outcome as
// the boolean-string ack Banxa expects. Store failures are logged and
// surfaced in the ack's Error field, never propagated: the provider
// retries on its own schedule and only reads the status flag.
func (h *Handler) Upsert(ctx context.Context, ev Event) Ack {
	eventID := uuid.NewString()
	if err := h.store.Upsert(ctx, ev); err != nil {
		h.log.ErrorContext(ctx, "webhook upsert failed",
			"event_id", eventID, "order_id", ev.OrderID, "status", ev.Status, "error", err)
		return Ack{Status: "false", Error: err.Error()}
	}
	h.log.InfoContext(ctx, "webhook upsert recorded",
		"event_id", eventID, "order_id", ev.OrderID, "status", ev.Status)
	return Ack{Status: "true"}
}

// Query returns the stored record for the order the event refers to,
// exactly as the store resolves it. Store errors propagate unchanged.
func (h *Handler) Query(ctx context.Context, ev Event) (OrderRecord, error) {
	return h.store.Query(ctx, ev)
}

// UpsertHTTP is an http.HandlerFunc for mounting the upsert entry point
// on a mux. It verifies the delivery signature when configured, decodes
// the event, and writes the JSON ack.
func (h *Handler) UpsertHTTP(w http.ResponseWriter, r *http.Request) {
	ev, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.Upsert(r.Context(), ev))
}

// QueryHTTP is an http.HandlerFunc for mounting the query entry point
// on a mux.
func (h *Handler) QueryHTTP(w http.ResponseWriter, r *http.Request) {
	ev, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}
	rec, err := h.Query(r.Context(), ev)
	if err != nil {
		h.log.ErrorContext(r.Context(), "webhook query failed", "order_id", ev.OrderID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// decodeEvent reads the request body, checks the delivery signature
// when verification is configured, and unmarshals the event. On failure
// it writes the error response and returns ok=false.
func (h *Handler) decodeEvent(w http.ResponseWriter, r *http.Request) (Event, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable body"})
		return Event{}, false
	}

	if h.creds.Secret != "" {
		header := r.Header.Get("Authorization")
		if !signing.VerifyAuthHeader(h.creds.APIKey, h.creds.Secret, header, r.Method, requestPath(r), string(body)) {
			h.log.WarnContext(r.Context(), "webhook signature rejected", "path", r.URL.Path)
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid signature"})
			return Event{}, false
		}
	}

	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed event"})
		return Event{}, false
	}
	ev.Raw = body
	return ev, true
}

// requestPath reproduces the path string Banxa signs: no leading slash,
// query string included when present.
func requestPath(r *http.Request) string {
	path := r.URL.Path
	if len(path) > 0 && path[0] == '/' {
		path = path[1:]
	}
	if r.URL.RawQuery != "" {
		path += "?" + r.URL.RawQuery
	}
	return path
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
