// Package analyzer scores a stock from provider insights with a fixed
// magic formula style heuristic. Everything here is pure: documents in,
// values out, absent fields handled as unknown.
package analyzer

import "stock-genius/internal/dto"

// Report is the outcome of evaluating one insights document.
type Report struct {
	Score          dto.ScoreResult
	Situation      dto.SpecialSituation
	Recommendation dto.Recommendation
}

// Evaluate runs scoring, special situation detection and the
// recommendation generator over an insights document.
func Evaluate(insightsDoc dto.Document) Report {
	score := Score(insightsDoc)
	situation := DetectSpecialSituation(ExtractNews(insightsDoc), ExtractFilings(insightsDoc))

	rec := Recommend(score.CompositeScore, situation)
	rec.Reasons = append(rec.Reasons, OutlookReasons(insightsDoc)...)

	return Report{
		Score:          score,
		Situation:      situation,
		Recommendation: rec,
	}
}
