// Package domain holds stock quote and price series types and ports
package domain

// Quote is the current snapshot for one listed symbol
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        string  `json:"volume"`
	MarketCap     string  `json:"market_cap"`
	PERatio       float64 `json:"pe_ratio"`
}

// PriceBar is one OHLCV point inside a series
type PriceBar struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume,omitempty"`
}

// PriceSeries is a historical window of bars for one symbol
type PriceSeries struct {
	Symbol   string     `json:"symbol"`
	Interval string     `json:"interval"`
	Data     []PriceBar `json:"data"`
}

// Intervals lists the accepted price windows in display order
var Intervals = []string{"1D", "1W", "1M", "3M", "1Y", "5Y"}

// ValidInterval reports whether interval is one of Intervals
func ValidInterval(interval string) bool {
	for _, iv := range Intervals {
		if iv == interval {
			return true
		}
	}
	return false
}
