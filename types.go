package banxa

import (
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Enums
// ---------------------------------------------------------------------------

// OrderType selects the direction of a flow: fiat-to-crypto ("buy") or
// crypto-to-fiat ("sell").
type OrderType string

const (
	OrderBuy  OrderType = "buy"
	OrderSell OrderType = "sell"
)

// ---------------------------------------------------------------------------
// Catalog types
// ---------------------------------------------------------------------------

// Fiat is one fiat currency Banxa supports for the requested order type.
type Fiat struct {
	FiatCode   string `json:"fiat_code"`
	FiatName   string `json:"fiat_name"`
	FiatSymbol string `json:"fiat_symbol"`
}

// Blockchain identifies one network a coin can be delivered on.
type Blockchain struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Coin is one cryptocurrency Banxa supports for the requested order type.
type Coin struct {
	CoinCode    string       `json:"coin_code"`
	CoinName    string       `json:"coin_name"`
	Blockchains []Blockchain `json:"blockchains"`
}

// TransactionLimit bounds the fiat amount a payment method accepts.
type TransactionLimit struct {
	FiatCode string          `json:"fiat_code"`
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`
}

// PaymentMethod describes one way a customer can pay or be paid out.
type PaymentMethod struct {
	ID                int64              `json:"id"`
	PaymentType       string             `json:"paymentType"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	LogoURL           string             `json:"logo_url"`
	Status            string             `json:"status"`
	Type              string             `json:"type"`
	SupportedFiat     []string           `json:"supported_fiat"`
	SupportedCoin     []string           `json:"supported_coin"`
	TransactionLimits []TransactionLimit `json:"transaction_limits"`
}

// Country is one country Banxa services.
type Country struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
}

// USState is one US state Banxa services.
type USState struct {
	StateCode string `json:"state_code"`
	StateName string `json:"state_name"`
}

// ---------------------------------------------------------------------------
// Pricing types
// ---------------------------------------------------------------------------

// PriceParams filters a price quote request. Zero-valued fields are
// omitted from the query string.
type PriceParams struct {
	Source          string          // fiat code when buying, coin code when selling
	SourceAmount    decimal.Decimal // amount of source to convert
	Target          string          // coin code when buying, fiat code when selling
	TargetAmount    decimal.Decimal // alternative to SourceAmount
	PaymentMethodID int64           // restrict the quote to one payment method
	Blockchain      string          // network code, e.g. "ETH"
}

// Price is one quote for a source/target pair through one payment method.
type Price struct {
	PaymentMethodID       int64           `json:"payment_method_id"`
	Type                  string          `json:"type"`
	SpotPriceFee          decimal.Decimal `json:"spot_price_fee"`
	SpotPriceIncludingFee decimal.Decimal `json:"spot_price_including_fee"`
	CoinAmount            decimal.Decimal `json:"coin_amount"`
	CoinCode              string          `json:"coin_code"`
	FiatAmount            decimal.Decimal `json:"fiat_amount"`
	FiatCode              string          `json:"fiat_code"`
	FeeAmount             decimal.Decimal `json:"fee_amount"`
	NetworkFee            decimal.Decimal `json:"network_fee"`
}

// ---------------------------------------------------------------------------
// Order types
// ---------------------------------------------------------------------------

// OrderParams describes a token order to create. Source/Target follow
// the same buy/sell orientation as PriceParams.
type OrderParams struct {
	AccountReference     string            `json:"account_reference"`
	PaymentMethodID      int64             `json:"payment_method_id,omitempty"`
	Source               string            `json:"source"`
	SourceAmount         decimal.Decimal   `json:"source_amount"`
	Target               string            `json:"target"`
	TargetAmount         *decimal.Decimal  `json:"target_amount,omitempty"`
	WalletAddress        string            `json:"wallet_address"`
	WalletAddressTag     string            `json:"wallet_address_tag,omitempty"`
	Blockchain           string            `json:"blockchain,omitempty"`
	ReturnURLOnSuccess   string            `json:"return_url_on_success"`
	ReturnURLOnFailure   string            `json:"return_url_on_failure,omitempty"`
	ReturnURLOnCancelled string            `json:"return_url_on_cancelled,omitempty"`
	MetaData             map[string]string `json:"meta_data,omitempty"`
}

// NFTMedia points at the artwork shown on the Banxa checkout page.
type NFTMedia struct {
	Type string `json:"type"`
	Link string `json:"link"`
}

// NFTDetail identifies the NFT being purchased.
type NFTDetail struct {
	ContractAddress string   `json:"contract_address"`
	TokenID         string   `json:"token_id"`
	Name            string   `json:"name"`
	Collection      string   `json:"collection"`
	Media           NFTMedia `json:"media"`
}

// NFTOrderParams describes an NFT checkout order to create.
type NFTOrderParams struct {
	OrderParams
	NFT NFTDetail `json:"nft"`
}

// Order is the provider's view of one on-ramp/off-ramp order.
type Order struct {
	ID               string            `json:"id"`
	AccountID        string            `json:"account_id"`
	AccountReference string            `json:"account_reference"`
	OrderType        string            `json:"order_type"`
	PaymentType      string            `json:"payment_type"`
	Ref              int64             `json:"ref"`
	FiatCode         string            `json:"fiat_code"`
	FiatAmount       decimal.Decimal   `json:"fiat_amount"`
	CoinCode         string            `json:"coin_code"`
	CoinAmount       decimal.Decimal   `json:"coin_amount"`
	WalletAddress    string            `json:"wallet_address"`
	WalletAddressTag string            `json:"wallet_address_tag"`
	Blockchain       Blockchain        `json:"blockchain"`
	Fee              decimal.Decimal   `json:"fee"`
	FeeTax           decimal.Decimal   `json:"fee_tax"`
	PaymentFee       decimal.Decimal   `json:"payment_fee"`
	NetworkFee       decimal.Decimal   `json:"network_fee"`
	TxHash           string            `json:"tx_hash"`
	TxConfirms       int               `json:"tx_confirms"`
	CheckoutURL      string            `json:"checkout_iframe"`
	Status           string            `json:"status"`
	CompletedAt      string            `json:"completed_at"`
	CreatedAt        string            `json:"created_at"`
	MetaData         map[string]string `json:"meta_data"`
}

// OrderFilterParams filters an order-history listing. Zero-valued
// fields are omitted from the query string.
type OrderFilterParams struct {
	StartDate        string   // inclusive, YYYY-MM-DD
	EndDate          string   // inclusive, YYYY-MM-DD
	Statuses         []string // e.g. "complete", "cancelled"
	AccountReference string
	Page             int
	PerPage          int
}

// ---------------------------------------------------------------------------
// Response envelopes
//
// Banxa wraps every payload in {"data": {...}} with a resource-named
// inner key.
// ---------------------------------------------------------------------------

type fiatsEnvelope struct {
	Data struct {
		Fiats []Fiat `json:"fiats"`
	} `json:"data"`
}

type coinsEnvelope struct {
	Data struct {
		Coins []Coin `json:"coins"`
	} `json:"data"`
}

type paymentMethodsEnvelope struct {
	Data struct {
		PaymentMethods []PaymentMethod `json:"payment_methods"`
	} `json:"data"`
}

type countriesEnvelope struct {
	Data struct {
		Countries []Country `json:"countries"`
	} `json:"data"`
}

type usStatesEnvelope struct {
	Data struct {
		States []USState `json:"states"`
	} `json:"data"`
}

type pricesEnvelope struct {
	Data struct {
		Prices []Price `json:"prices"`
	} `json:"data"`
}

type orderEnvelope struct {
	Data struct {
		Order Order `json:"order"`
	} `json:"data"`
}

type ordersEnvelope struct {
	Data struct {
		Orders []Order `json:"orders"`
	} `json:"data"`
}
