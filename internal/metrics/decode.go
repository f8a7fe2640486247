package metrics

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrEmptyPayload is returned when the provider document contains no data.
var ErrEmptyPayload = errors.New("metrics: empty provider payload")

// Provider payload paths. The document layout follows the market-data
// collaborator's saved snapshot: an "info" object of spot metrics, a
// "financials" object with annual series (most recent first) and a
// "cashflow" object with trailing-twelve-month flows.
const (
	pathPrice         = "info.currentPrice"
	pathShares        = "info.sharesOutstanding"
	pathMarketCap     = "info.marketCap"
	pathEV            = "info.enterpriseValue"
	pathRevenue       = "info.totalRevenue"
	pathEBITDA        = "info.ebitda"
	pathFCF           = "info.freeCashflow"
	pathBookValue     = "info.bookValue"
	pathDividendYield = "info.dividendYield"
	pathBeta          = "info.beta"
	pathDebt          = "info.totalDebt"
	pathCash          = "info.totalCash"
	pathPE            = "info.trailingPE"
	pathPEG           = "info.pegRatio"
	pathPB            = "info.priceToBook"
	pathPS            = "info.priceToSalesTrailing12Months"
	pathEVEBITDA      = "info.enterpriseToEbitda"
	pathEPS           = "info.trailingEps"
	pathRevGrowth     = "info.revenueGrowth"
	pathRevHistory    = "financials.totalRevenue"
	pathOperatingCF   = "cashflow.operatingCashFlow"
	pathCapex         = "cashflow.capitalExpenditure"
)

// Decode builds a Snapshot and History from a raw provider payload. Missing
// fields decode as 0; negative monetary values are clamped to 0 so the
// snapshot invariant holds regardless of provider quirks. Decode never
// fails on partial data, only on an unusable document.
func Decode(ticker string, payload []byte) (Snapshot, History, error) {
	if len(payload) == 0 || !gjson.ValidBytes(payload) {
		return Snapshot{}, History{}, ErrEmptyPayload
	}

	num := func(path string) float64 {
		return nonNegative(gjson.GetBytes(payload, path).Float())
	}

	snap := Snapshot{
		Ticker:            ticker,
		CurrentPrice:      num(pathPrice),
		SharesOutstanding: num(pathShares),
		MarketCap:         num(pathMarketCap),
		EnterpriseValue:   num(pathEV),
		RevenueTTM:        num(pathRevenue),
		EBITDATTM:         num(pathEBITDA),
		FreeCashFlowTTM:   num(pathFCF),
		BookValue:         num(pathBookValue),
		DividendYield:     num(pathDividendYield),
		Beta:              gjson.GetBytes(payload, pathBeta).Float(),
		Debt:              num(pathDebt),
		Cash:              num(pathCash),
		PERatio:           num(pathPE),
		PEGRatio:          num(pathPEG),
		PriceToBook:       num(pathPB),
		PriceToSales:      num(pathPS),
		EVToEBITDA:        num(pathEVEBITDA),
		EPS:               gjson.GetBytes(payload, pathEPS).Float(),
	}
	snap.EarningsTTM = nonNegative(snap.EPS * snap.SharesOutstanding)
	snap.OwnerEarnings = ownerEarnings(payload, snap.FreeCashFlowTTM)

	hist := History{AnalystGrowth: gjson.GetBytes(payload, pathRevGrowth).Float()}
	for _, v := range gjson.GetBytes(payload, pathRevHistory).Array() {
		hist.Revenues = append(hist.Revenues, v.Float())
	}

	return snap, hist, nil
}

// ownerEarnings prefers free cash flow and falls back to operating cash
// flow minus capital expenditure, the Buffett approximation the payback and
// yield methods rely on.
func ownerEarnings(payload []byte, fcf float64) float64 {
	if fcf > 0 {
		return fcf
	}
	opCF := gjson.GetBytes(payload, pathOperatingCF).Float()
	capex := gjson.GetBytes(payload, pathCapex).Float()
	if capex < 0 {
		capex = -capex
	}
	return nonNegative(opCF - capex)
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
