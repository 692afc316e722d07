package analyzer

import (
	"fmt"

	"stock-genius/internal/dto"
	"stock-genius/pkg/utils"
)

const (
	BuyThreshold  = 75.0
	HoldThreshold = 50.0
)

// Recommend turns a composite score and a special situation into a label.
//
// A detected situation starts the recommendation at BUY with the
// situation's confidence. The score band is applied afterwards: the high
// band keeps the larger confidence, the middle band leaves a BUY alone,
// and the low band always ends in SELL, even over a situation BUY.
func Recommend(score float64, situation dto.SpecialSituation) dto.Recommendation {
	rec := dto.Recommendation{
		Label:      dto.LabelHold,
		Confidence: 0,
		Reasons:    []string{},
	}

	if situation.Present {
		rec.Label = dto.LabelBuy
		rec.Confidence = float64(situation.Confidence)
		rec.Reasons = append(rec.Reasons, situationReason(situation))
	}

	switch {
	case score >= BuyThreshold:
		rec.Label = dto.LabelBuy
		rec.Confidence = max(rec.Confidence, score)
		rec.Reasons = append(rec.Reasons, fmt.Sprintf("High Magic Formula score: %.2f", score))
	case score >= HoldThreshold:
		if rec.Label != dto.LabelBuy {
			rec.Label = dto.LabelHold
			rec.Confidence = score
		}
		rec.Reasons = append(rec.Reasons, fmt.Sprintf("Moderate Magic Formula score: %.2f", score))
	default:
		rec.Label = dto.LabelSell
		rec.Confidence = 100 - score
		rec.Reasons = append(rec.Reasons, fmt.Sprintf("Low Magic Formula score: %.2f", score))
	}

	rec.Confidence = utils.Clamp(rec.Confidence, 0, 100)
	return rec
}

// ErrorRecommendation is returned when the analysis itself failed.
func ErrorRecommendation(err error) dto.Recommendation {
	return dto.Recommendation{
		Label:      dto.LabelHold,
		Confidence: 0,
		Reasons:    []string{fmt.Sprintf("error analyzing stock: %v", err)},
	}
}

var outlookTerms = []struct {
	path  string
	label string
}{
	{"shortTermOutlook", "Short-term"},
	{"intermediateTermOutlook", "Intermediate-term"},
	{"longTermOutlook", "Long-term"},
}

// OutlookReasons describes the technical outlook directions found in the
// insights document. They are informational and do not move the label.
func OutlookReasons(doc dto.Document) []string {
	events := insights(doc).Get("instrumentInfo.technicalEvents")
	if !events.Exists() {
		return nil
	}

	var reasons []string
	for _, term := range outlookTerms {
		outlook := events.Get(term.path)
		direction, ok := outlook.Get("direction").String()
		if !ok || direction == "" {
			continue
		}
		reason := fmt.Sprintf("%s technical outlook: %s", term.label, direction)
		if score, ok := outlook.Get("score").Float(); ok {
			reason += fmt.Sprintf(" (score %.0f)", score)
		}
		reasons = append(reasons, reason)
	}
	return reasons
}
