package analyzer

import "stock-genius/internal/dto"

// Provider range and interval tokens.
const (
	Range1Month  = "1mo"
	Range3Month  = "3mo"
	Range6Month  = "6mo"
	Range1Year   = "1y"
	Range2Year   = "2y"
	Range5Year   = "5y"
	Range10Year  = "10y"
	Interval1Day = "1d"
	Interval1Wk  = "1wk"
)

var timeframeBuckets = []struct {
	maxMonths int
	timeframe dto.Timeframe
}{
	{1, dto.Timeframe{Range: Range1Month, Interval: Interval1Day}},
	{3, dto.Timeframe{Range: Range3Month, Interval: Interval1Day}},
	{6, dto.Timeframe{Range: Range6Month, Interval: Interval1Wk}},
	{12, dto.Timeframe{Range: Range1Year, Interval: Interval1Wk}},
	{24, dto.Timeframe{Range: Range2Year, Interval: Interval1Wk}},
	{60, dto.Timeframe{Range: Range5Year, Interval: Interval1Wk}},
}

// MapTimeframe buckets an analysis horizon in months into the provider's
// range and interval vocabulary. It never fails; anything past five years
// reads ten years of weekly data.
func MapTimeframe(months int) dto.Timeframe {
	for _, b := range timeframeBuckets {
		if months <= b.maxMonths {
			return b.timeframe
		}
	}
	return dto.Timeframe{Range: Range10Year, Interval: Interval1Wk}
}
