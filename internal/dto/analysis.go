package dto

import "time"

const DefaultAnalysisMonths = 12

type Label string

const (
	LabelBuy  Label = "BUY"
	LabelHold Label = "HOLD"
	LabelSell Label = "SELL"
)

type SituationKind string

const (
	SituationSpinOff       SituationKind = "Spin-off"
	SituationMerger        SituationKind = "Merger/Acquisition"
	SituationRestructuring SituationKind = "Restructuring"
	SituationNone          SituationKind = "None"
)

// Upstream document names, used when reporting degraded responses.
const (
	SourceChart    = "chart"
	SourceInsights = "insights"
	SourceProfile  = "profile"
)

type AnalysisRequest struct {
	Symbol string `validate:"required"`
	Months int    `validate:"min=1"`
}

type SpecialSituation struct {
	Present    bool          `json:"isSpecialSituation"`
	Kind       SituationKind `json:"type"`
	Confidence int           `json:"confidence"`
	Details    string        `json:"details"`
}

// ScoreResult carries the composite score and its two proxies. A nil proxy
// was not computable from the data and a fallback was used for the composite.
type ScoreResult struct {
	CompositeScore     float64  `json:"score"`
	CapitalReturnProxy *float64 `json:"rocScore"`
	EarningsYieldProxy *float64 `json:"earningsYieldScore"`
	Details            string   `json:"details"`
}

type Recommendation struct {
	Label      Label    `json:"recommendation"`
	Confidence float64  `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

type AnalysisResponse struct {
	Symbol             string            `json:"symbol"`
	Months             int               `json:"months"`
	Recommendation     Label             `json:"recommendation"`
	Confidence         float64           `json:"confidence"`
	Reasons            []string          `json:"reasons"`
	SpecialSituation   *SpecialSituation `json:"specialSituation"`
	ScoreResult        *ScoreResult      `json:"scoreResult"`
	Price              *PriceSummary     `json:"price,omitempty"`
	Company            *CompanyProfile   `json:"company,omitempty"`
	Degraded           bool              `json:"degraded"`
	UnavailableSources []string          `json:"unavailableSources,omitempty"`
	Timestamp          time.Time         `json:"timestamp"`
}
