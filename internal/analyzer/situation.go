package analyzer

import (
	"fmt"

	"stock-genius/internal/dto"
	"stock-genius/pkg/utils"
)

type NewsItem struct {
	Headline string
}

type FilingItem struct {
	Title       string
	Description string
}

type situationRule struct {
	kind     dto.SituationKind
	keywords []string
	details  string
}

// Evaluated in order, the first kind with any match wins.
var situationRules = []situationRule{
	{
		kind:     dto.SituationSpinOff,
		keywords: []string{"spin-off", "spinoff", "spin off", "divestiture"},
		details:  "Potential spin-off detected based on news and/or SEC filings",
	},
	{
		kind:     dto.SituationMerger,
		keywords: []string{"merger", "acquisition", "acquire", "takeover", "buyout"},
		details:  "Potential merger or acquisition detected based on news and/or SEC filings",
	},
	{
		kind:     dto.SituationRestructuring,
		keywords: []string{"restructuring", "reorganization", "bankruptcy", "chapter 11"},
		details:  "Potential restructuring detected based on news and/or SEC filings",
	},
}

const confidencePerMatch = 25

// ExtractNews reads sigDevs headlines from an insights document.
func ExtractNews(doc dto.Document) []NewsItem {
	var news []NewsItem
	for _, item := range insights(doc).Get("sigDevs").Items() {
		news = append(news, NewsItem{Headline: item.Get("headline").StringOr("")})
	}
	return news
}

// ExtractFilings reads secReports from an insights document.
func ExtractFilings(doc dto.Document) []FilingItem {
	var filings []FilingItem
	for _, item := range insights(doc).Get("secReports").Items() {
		filings = append(filings, FilingItem{
			Title:       item.Get("title").StringOr(""),
			Description: item.Get("description").StringOr(""),
		})
	}
	return filings
}

// DetectSpecialSituation looks for spin-off, merger and restructuring
// keywords in news headlines and filings. Confidence grows by 25 per
// matching item of the winning kind, capped at 100.
func DetectSpecialSituation(news []NewsItem, filings []FilingItem) dto.SpecialSituation {
	texts := make([]string, 0, len(news)+len(filings))
	for _, n := range news {
		texts = append(texts, utils.SafeText(n.Headline))
	}
	for _, f := range filings {
		texts = append(texts, utils.SafeText(f.Title+" "+f.Description))
	}

	for _, rule := range situationRules {
		matches := 0
		for _, text := range texts {
			if utils.ContainsAnyFold(text, rule.keywords) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		return dto.SpecialSituation{
			Present:    true,
			Kind:       rule.kind,
			Confidence: min(100, matches*confidencePerMatch),
			Details:    rule.details,
		}
	}

	return dto.SpecialSituation{
		Present:    false,
		Kind:       dto.SituationNone,
		Confidence: 0,
		Details:    "No special situations detected",
	}
}

func situationReason(s dto.SpecialSituation) string {
	return fmt.Sprintf("Special situation detected: %s (%s)", s.Kind, s.Details)
}
