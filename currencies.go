package banxa

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetFiats returns the fiat currencies available for the given order type.
func (c *BanxaClient) GetFiats(ctx context.Context, orderType OrderType) ([]Fiat, error) {
	raw, err := c.getJSON(ctx, EndpointFiats+string(orderType))
	if err != nil {
		return nil, err
	}
	var env fiatsEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("banxa: parsing fiats: %w", err)
	}
	return env.Data.Fiats, nil
}

// GetCoins returns the cryptocurrencies available for the given order
// type, with the blockchains each can settle on.
func (c *BanxaClient) GetCoins(ctx context.Context, orderType OrderType) ([]Coin, error) {
	raw, err := c.getJSON(ctx, EndpointCoins+string(orderType))
	if err != nil {
		return nil, err
	}
	var env coinsEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("banxa: parsing coins: %w", err)
	}
	return env.Data.Coins, nil
}

// GetPaymentMethods returns all payment methods, with per-fiat
// transaction limits and fee configuration.
func (c *BanxaClient) GetPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	raw, err := c.getJSON(ctx, EndpointPaymentMethods)
	if err != nil {
		return nil, err
	}
	var env paymentMethodsEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("banxa: parsing payment methods: %w", err)
	}
	return env.Data.PaymentMethods, nil
}

// GetCountries returns the countries Banxa services.
func (c *BanxaClient) GetCountries(ctx context.Context) ([]Country, error) {
	raw, err := c.getJSON(ctx, EndpointCountries)
	if err != nil {
		return nil, err
	}
	var env countriesEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("banxa: parsing countries: %w", err)
	}
	return env.Data.Countries, nil
}

// GetUSStates returns the US states Banxa services. Coverage differs
// from the country list because of state-level licensing.
func (c *BanxaClient) GetUSStates(ctx context.Context) ([]USState, error) {
	raw, err := c.getJSON(ctx, EndpointUSStates)
	if err != nil {
		return nil, err
	}
	var env usStatesEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("banxa: parsing us states: %w", err)
	}
	return env.Data.States, nil
}
