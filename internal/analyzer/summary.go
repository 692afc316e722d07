package analyzer

import (
	"stock-genius/internal/dto"
	"stock-genius/pkg/jsonpath"
)

// SummarizePrice reads the market price and the first and last close of
// the requested range from a chart document.
func SummarizePrice(doc dto.Document) *dto.PriceSummary {
	result := jsonpath.Get(doc, "chart.result.0")
	if !result.Exists() {
		return nil
	}

	summary := &dto.PriceSummary{
		Currency: result.Get("meta.currency").StringOr(""),
	}
	if price, ok := result.Get("meta.regularMarketPrice").Float(); ok {
		summary.RegularMarketPrice = &price
	}

	// Closes can contain nulls for non-trading samples.
	var first, last *float64
	for _, c := range result.Get("indicators.quote.0.close").Items() {
		v, ok := c.Float()
		if !ok {
			continue
		}
		if first == nil {
			first = &v
		}
		last = &v
		summary.DataPoints++
	}
	summary.FirstClose = first
	summary.LastClose = last

	if first != nil && last != nil && *first != 0 {
		change := (*last - *first) / *first * 100
		summary.ChangePercent = &change
	}

	if summary.RegularMarketPrice == nil && summary.DataPoints == 0 {
		return nil
	}
	return summary
}

// SummarizeCompany reads name, sector and industry from a quote summary
// profile document.
func SummarizeCompany(doc dto.Document) *dto.CompanyProfile {
	result := jsonpath.Get(doc, "quoteSummary.result.0")
	if !result.Exists() {
		return nil
	}

	asset := result.Get("assetProfile")
	if !asset.Exists() {
		asset = result.Get("summaryProfile")
	}

	profile := &dto.CompanyProfile{
		Name:     result.Get("price.longName").StringOr(result.Get("price.shortName").StringOr("")),
		Sector:   asset.Get("sector").StringOr(""),
		Industry: asset.Get("industry").StringOr(""),
		Country:  asset.Get("country").StringOr(""),
		Website:  asset.Get("website").StringOr(""),
	}
	if employees, ok := asset.Get("fullTimeEmployees").Float(); ok {
		n := int64(employees)
		profile.Employees = &n
	}

	if *profile == (dto.CompanyProfile{}) {
		return nil
	}
	return profile
}
