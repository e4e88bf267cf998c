package banxa

const (
	// Catalog data
	EndpointFiats          = "api/fiats/" // append order type ("buy" or "sell")
	EndpointCoins          = "api/coins/" // append order type ("buy" or "sell")
	EndpointPaymentMethods = "api/payment-methods"
	EndpointCountries      = "api/countries"
	EndpointUSStates       = "api/countries/us/states"

	// Pricing
	EndpointPrices = "api/prices"

	// Orders
	EndpointOrders   = "api/orders" // GET with filters, GET /{id}, POST to create
	EndpointNFTOrder = "api/orders/nft/buy"
)
