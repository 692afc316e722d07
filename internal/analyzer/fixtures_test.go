package analyzer

import "stock-genius/internal/dto"

// Trimmed insights payload in the provider's shape.
var insightsFixture = dto.Document(`{
  "finance": {
    "result": {
      "symbol": "AAPL",
      "instrumentInfo": {
        "technicalEvents": {
          "provider": "Trading Central",
          "shortTermOutlook": {"stateDescription": "Recent bearish events", "direction": "Bearish", "score": 2},
          "intermediateTermOutlook": {"direction": "Neutral", "score": 3},
          "longTermOutlook": {"stateDescription": "Recent bullish events", "direction": "Bullish", "score": 4}
        },
        "valuation": {"color": 3.0, "description": "Near Fair Value", "discount": "-3%"}
      },
      "companySnapshot": {
        "company": {"innovativeness": 5, "hiring": 0.8, "sustainability": 0.6}
      },
      "recommendation": {"targetPrice": 210, "provider": "Argus Research", "rating": "BUY"},
      "sigDevs": [
        {"headline": "Apple Inc. announces quarterly dividend", "date": "2024-05-02"},
        {"headline": "Apple Inc. completes acquisition of DarwinAI", "date": "2024-03-14"}
      ],
      "secReports": [
        {"type": "10-Q", "title": "Quarterly report", "description": "Form 10-Q filed"}
      ]
    }
  }
}`)
