package webhook

import "context"

// Event is the payload Banxa delivers when an order changes state. The
// raw body is retained so stores can persist fields this client does
// not model.
type Event struct {
	OrderID string `json:"order_id"`
	Hash    string `json:"hash"`
	Status  string `json:"status"`

	Raw []byte `json:"-"`
}

// OrderRecord is a store's view of one tracked order.
type OrderRecord struct {
	ID     string `json:"id"`
	Hash   string `json:"hash"`
	Status string `json:"status"`
}

// OrderStore is the persistence capability the caller supplies. The
// client owns no storage: webhook handling delegates both writes and
// reads here.
type OrderStore interface {
	// Upsert records the order state carried by the event, creating
	// the order if it is not yet known.
	Upsert(ctx context.Context, ev Event) error

	// Query returns the stored state for the order the event refers to.
	Query(ctx context.Context, ev Event) (OrderRecord, error)
}
