package banxa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// GetPrices returns quotes for the given source/target pair. When
// PaymentMethodID is set the result is a single quote; otherwise one
// quote per eligible payment method.
func (c *BanxaClient) GetPrices(ctx context.Context, params PriceParams) ([]Price, error) {
	if params.Source == "" {
		return nil, &ValidationError{Field: "source", Message: "is required"}
	}
	if params.Target == "" {
		return nil, &ValidationError{Field: "target", Message: "is required"}
	}

	q := url.Values{}
	q.Set("source", params.Source)
	q.Set("target", params.Target)
	if !params.SourceAmount.IsZero() {
		q.Set("source_amount", params.SourceAmount.String())
	}
	if !params.TargetAmount.IsZero() {
		q.Set("target_amount", params.TargetAmount.String())
	}
	if params.PaymentMethodID != 0 {
		q.Set("payment_method_id", strconv.FormatInt(params.PaymentMethodID, 10))
	}
	if params.Blockchain != "" {
		q.Set("blockchain", params.Blockchain)
	}

	// Encode() emits keys in sorted order, so the signed path is
	// stable for identical params.
	raw, err := c.getJSON(ctx, EndpointPrices+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	var env pricesEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("banxa: parsing prices: %w", err)
	}
	return env.Data.Prices, nil
}
