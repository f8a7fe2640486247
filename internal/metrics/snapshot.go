package metrics

// Snapshot is the normalized financial picture of one ticker at one point
// in time. Every valuation method reads from it and none mutates it. A
// field the data provider did not supply is 0, never null; methods guard
// their own divisions. Monetary fields are non-negative, only GrowthRate
// and EPS may carry a sign.
type Snapshot struct {
	Ticker            string  `json:"ticker"`
	CurrentPrice      float64 `json:"current_price"`
	SharesOutstanding float64 `json:"shares_outstanding"`
	MarketCap         float64 `json:"market_cap"`
	EnterpriseValue   float64 `json:"enterprise_value"`
	RevenueTTM        float64 `json:"revenue_ttm"`
	EBITDATTM         float64 `json:"ebitda_ttm"`
	EarningsTTM       float64 `json:"earnings_ttm"`
	FreeCashFlowTTM   float64 `json:"free_cash_flow_ttm"`
	BookValue         float64 `json:"book_value"`
	DividendYield     float64 `json:"dividend_yield"`
	GrowthRate        float64 `json:"growth_rate"`
	Beta              float64 `json:"beta"`
	Debt              float64 `json:"debt"`
	Cash              float64 `json:"cash"`
	PERatio           float64 `json:"pe_ratio"`
	PEGRatio          float64 `json:"peg_ratio"`
	PriceToBook       float64 `json:"price_to_book"`
	PriceToSales      float64 `json:"price_to_sales"`
	EVToEBITDA        float64 `json:"ev_to_ebitda"`
	EPS               float64 `json:"eps"`
	OwnerEarnings     float64 `json:"owner_earnings"`
}

// History carries the inputs the growth estimator works from: annual total
// revenue ordered most recent first, exactly as the provider reports it,
// plus the provider's own forward growth estimate when present.
type History struct {
	Revenues      []float64 `json:"revenues"`
	AnalystGrowth float64   `json:"analyst_growth"`
}
