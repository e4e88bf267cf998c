package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/longmengua/banxa-payment-intergration/internal/signing"
)

type fakeStore struct {
	upsertErr error
	queryErr  error
	record    OrderRecord
	events    []Event
}

func (s *fakeStore) Upsert(_ context.Context, ev Event) error {
	s.events = append(s.events, ev)
	return s.upsertErr
}

func (s *fakeStore) Query(_ context.Context, ev Event) (OrderRecord, error) {
	s.events = append(s.events, ev)
	return s.record, s.queryErr
}

func TestUpsertAck(t *testing.T) {
	store := &fakeStore{}
	h := NewHandler(store)

	ack := h.Upsert(context.Background(), Event{OrderID: "o1", Status: "complete"})
	if ack.Status != "true" || ack.Error != "" {
		t.Fatalf("unexpected ack: %#v", ack)
	}
	if len(store.events) != 1 || store.events[0].OrderID != "o1" {
		t.Fatalf("store did not receive the event: %#v", store.events)
	}

	store.upsertErr = errors.New("db unavailable")
	ack = h.Upsert(context.Background(), Event{OrderID: "o2"})
	if ack.Status != "false" {
		t.Fatalf("unexpected ack on failure: %#v", ack)
	}
	if ack.Error != "db unavailable" {
		t.Fatalf("ack lost the error detail: %#v", ack)
	}
}

func TestQueryPassthrough(t *testing.T) {
	store := &fakeStore{record: OrderRecord{ID: "o1", Hash: "h1", Status: "complete"}}
	h := NewHandler(store)

	rec, err := h.Query(context.Background(), Event{OrderID: "o1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if rec != store.record {
		t.Fatalf("record was transformed: got %#v want %#v", rec, store.record)
	}

	store.queryErr = errors.New("not found")
	if _, err := h.Query(context.Background(), Event{OrderID: "o2"}); !errors.Is(err, store.queryErr) {
		t.Fatalf("query error did not propagate: %v", err)
	}
}

func TestUpsertHTTPWithSignatureVerification(t *testing.T) {
	store := &fakeStore{}
	h := NewHandler(store, WithSignatureVerification("key-1", "s3cr3t"))

	body := `{"order_id":"o1","hash":"h1","status":"complete"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/banxa/upsert", strings.NewReader(body))
	req.Header.Set("Authorization",
		signing.AuthHeader("key-1", "s3cr3t", http.MethodPost, "webhooks/banxa/upsert", signing.Nonce(), body))

	rr := httptest.NewRecorder()
	h.UpsertHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var ack Ack
	if err := json.Unmarshal(rr.Body.Bytes(), &ack); err != nil {
		t.Fatalf("unmarshal ack: %v", err)
	}
	if ack.Status != "true" {
		t.Fatalf("unexpected ack: %#v", ack)
	}
	if len(store.events) != 1 || store.events[0].OrderID != "o1" {
		t.Fatalf("store did not receive the event: %#v", store.events)
	}
	if string(store.events[0].Raw) != body {
		t.Fatalf("raw payload not retained: %s", store.events[0].Raw)
	}
}

func TestUpsertHTTPRejectsTamperedBody(t *testing.T) {
	store := &fakeStore{}
	h := NewHandler(store, WithSignatureVerification("key-1", "s3cr3t"))

	signed := `{"order_id":"o1","status":"complete"}`
	sent := `{"order_id":"o1","status":"refunded"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/banxa/upsert", strings.NewReader(sent))
	req.Header.Set("Authorization",
		signing.AuthHeader("key-1", "s3cr3t", http.MethodPost, "webhooks/banxa/upsert", signing.Nonce(), signed))

	rr := httptest.NewRecorder()
	h.UpsertHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
	if len(store.events) != 0 {
		t.Fatalf("store was called despite rejected signature")
	}
}

func TestUpsertHTTPMalformedEvent(t *testing.T) {
	h := NewHandler(&fakeStore{})

	req := httptest.NewRequest(http.MethodPost, "/webhooks/banxa/upsert", strings.NewReader("not-json"))
	rr := httptest.NewRecorder()
	h.UpsertHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestQueryHTTP(t *testing.T) {
	store := &fakeStore{record: OrderRecord{ID: "o1", Hash: "h1", Status: "complete"}}
	h := NewHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/banxa/query", strings.NewReader(`{"order_id":"o1"}`))
	rr := httptest.NewRecorder()
	h.QueryHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var rec OrderRecord
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	if rec != store.record {
		t.Fatalf("record was transformed: got %#v want %#v", rec, store.record)
	}

	store.queryErr = errors.New("not found")
	rr = httptest.NewRecorder()
	h.QueryHTTP(rr, httptest.NewRequest(http.MethodPost, "/webhooks/banxa/query", strings.NewReader(`{"order_id":"o2"}`)))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}
