package dto

// Document is a raw JSON payload returned by the market data provider.
// Its schema is not under our control, so it is only ever read through
// optional-path lookups.
type Document []byte

// EmptyDocument stands in for a fetch that failed.
var EmptyDocument = Document(`{}`)

const (
	DefaultChartRange    = "1y"
	DefaultChartInterval = "1d"
)

type GetStockChartParam struct {
	Symbol   string `json:"symbol"`
	Range    string `json:"range"`
	Interval string `json:"interval"`
}

// Timeframe is the provider's range and sampling interval vocabulary.
type Timeframe struct {
	Range    string `json:"range"`
	Interval string `json:"interval"`
}

// PriceSummary is derived from the chart document.
type PriceSummary struct {
	Currency           string   `json:"currency,omitempty"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
	FirstClose         *float64 `json:"firstClose"`
	LastClose          *float64 `json:"lastClose"`
	ChangePercent      *float64 `json:"changePercent"`
	DataPoints         int      `json:"dataPoints"`
}

// CompanyProfile is derived from the profile document.
type CompanyProfile struct {
	Name      string `json:"name,omitempty"`
	Sector    string `json:"sector,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Country   string `json:"country,omitempty"`
	Website   string `json:"website,omitempty"`
	Employees *int64 `json:"employees,omitempty"`
}
