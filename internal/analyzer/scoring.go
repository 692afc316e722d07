package analyzer

import (
	"fmt"
	"strings"

	"stock-genius/internal/dto"
	"stock-genius/pkg/jsonpath"
)

const insightsRoot = "finance.result"

const (
	// Used in the composite when a proxy cannot be computed.
	FallbackCapitalReturn = 25.0
	FallbackEarningsYield = 15.0

	DefaultInnovativeness = 3.0
	// Bonus for ratings outside the table, including a missing rating.
	DefaultRatingBonus = 15.0
)

var ratingBonus = map[string]float64{
	"buy":          25,
	"strong buy":   25,
	"outperform":   20,
	"hold":         15,
	"neutral":      15,
	"underperform": 10,
	"sell":         5,
}

func insights(doc dto.Document) jsonpath.Node {
	return jsonpath.Get(doc, insightsRoot)
}

// CapitalReturnProxy stands in for return on capital:
// longTermOutlook.score*15 + innovativeness*5. It is unknown when the
// long term outlook score is missing.
func CapitalReturnProxy(doc dto.Document) (float64, bool) {
	root := insights(doc)

	outlook, ok := root.Get("instrumentInfo.technicalEvents.longTermOutlook.score").Float()
	if !ok {
		return 0, false
	}

	innovativeness, ok := root.Get("companySnapshot.company.innovativeness").Float()
	if !ok {
		innovativeness = DefaultInnovativeness
	}

	return outlook*15 + innovativeness*5, true
}

// EarningsYieldProxy stands in for earnings yield:
// valuation.color*15 + analyst rating bonus. It is unknown when the
// valuation color is missing.
func EarningsYieldProxy(doc dto.Document) (float64, bool) {
	root := insights(doc)

	color, ok := root.Get("instrumentInfo.valuation.color").Float()
	if !ok {
		return 0, false
	}

	rating := root.Get("recommendation.rating").StringOr("")
	return color*15 + RatingBonus(rating), true
}

// RatingBonus maps an analyst rating to bonus points, case-insensitively.
func RatingBonus(rating string) float64 {
	if bonus, ok := ratingBonus[strings.ToLower(strings.TrimSpace(rating))]; ok {
		return bonus
	}
	return DefaultRatingBonus
}

// Score blends both proxies into the composite score.
func Score(doc dto.Document) dto.ScoreResult {
	result := dto.ScoreResult{}

	roc := FallbackCapitalReturn
	if v, ok := CapitalReturnProxy(doc); ok {
		roc = v
		result.CapitalReturnProxy = &v
	}

	ey := FallbackEarningsYield
	if v, ok := EarningsYieldProxy(doc); ok {
		ey = v
		result.EarningsYieldProxy = &v
	}

	result.CompositeScore = (roc + ey) / 2
	result.Details = fmt.Sprintf("Magic Formula Score: %.2f (ROC: %s, Earnings Yield: %s)",
		result.CompositeScore, formatProxy(result.CapitalReturnProxy), formatProxy(result.EarningsYieldProxy))

	return result
}

func formatProxy(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}
