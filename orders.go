package banxa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// GetOrder returns a single order by its Banxa order ID.
func (c *BanxaClient) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	if orderID == "" {
		return nil, &ValidationError{Field: "orderID", Message: "is required"}
	}
	raw, err := c.getJSON(ctx, EndpointOrders+"/"+url.PathEscape(orderID))
	if err != nil {
		return nil, err
	}
	var env orderEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("banxa: parsing order: %w", err)
	}
	return &env.Data.Order, nil
}

// GetOrders returns the order history matching the given filters.
func (c *BanxaClient) GetOrders(ctx context.Context, params OrderFilterParams) ([]Order, error) {
	q := url.Values{}
	if params.StartDate != "" {
		q.Set("start_date", params.StartDate)
	}
	if params.EndDate != "" {
		q.Set("end_date", params.EndDate)
	}
	if len(params.Statuses) > 0 {
		q.Set("status", strings.Join(params.Statuses, ","))
	}
	if params.AccountReference != "" {
		q.Set("account_reference", params.AccountReference)
	}
	if params.Page != 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage != 0 {
		q.Set("per_page", strconv.Itoa(params.PerPage))
	}

	path := EndpointOrders
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	raw, err := c.getJSON(ctx, path)
	if err != nil {
		return nil, err
	}
	var env ordersEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("banxa: parsing orders: %w", err)
	}
	return env.Data.Orders, nil
}

// CreateOrder creates a token order. For a buy order the source is a
// fiat code and the target a coin code; a sell order is oriented the
// other way around. The returned order carries the checkout URL the
// customer must be redirected to.
func (c *BanxaClient) CreateOrder(ctx context.Context, params OrderParams, orderType OrderType) (*Order, error) {
	if err := validateOrderParams(params, orderType); err != nil {
		return nil, err
	}
	raw, err := c.postJSON(ctx, EndpointOrders, params)
	if err != nil {
		return nil, err
	}
	var env orderEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("banxa: parsing created order: %w", err)
	}
	return &env.Data.Order, nil
}

// CreateNFTOrder creates an NFT checkout order. Only the buy direction
// exists for NFTs.
func (c *BanxaClient) CreateNFTOrder(ctx context.Context, params NFTOrderParams, orderType OrderType) (*Order, error) {
	if orderType != OrderBuy {
		return nil, &ValidationError{Field: "orderType", Message: "nft orders only support buy"}
	}
	if err := validateOrderParams(params.OrderParams, orderType); err != nil {
		return nil, err
	}
	if params.NFT.ContractAddress == "" {
		return nil, &ValidationError{Field: "nft.contract_address", Message: "is required"}
	}
	if !common.IsHexAddress(params.NFT.ContractAddress) {
		return nil, &ValidationError{Field: "nft.contract_address", Message: "is not a valid contract address"}
	}
	raw, err := c.postJSON(ctx, EndpointNFTOrder, params)
	if err != nil {
		return nil, err
	}
	var env orderEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("banxa: parsing created nft order: %w", err)
	}
	return &env.Data.Order, nil
}

// validateOrderParams rejects obviously broken order requests before
// anything is signed or sent. EVM-style wallet addresses get a checksum
// shape check; other chains are passed through for the provider to
// validate.
func validateOrderParams(params OrderParams, orderType OrderType) error {
	if orderType != OrderBuy && orderType != OrderSell {
		return &ValidationError{Field: "orderType", Message: "must be buy or sell"}
	}
	if params.AccountReference == "" {
		return &ValidationError{Field: "account_reference", Message: "is required"}
	}
	if params.Source == "" {
		return &ValidationError{Field: "source", Message: "is required"}
	}
	if params.Target == "" {
		return &ValidationError{Field: "target", Message: "is required"}
	}
	if orderType == OrderBuy && params.WalletAddress == "" {
		return &ValidationError{Field: "wallet_address", Message: "is required for buy orders"}
	}
	if strings.HasPrefix(params.WalletAddress, "0x") && !common.IsHexAddress(params.WalletAddress) {
		return &ValidationError{Field: "wallet_address", Message: "is not a valid EVM address"}
	}
	return nil
}
