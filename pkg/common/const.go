package common

// Cache keys for upstream documents.
const (
	KEY_CHART    = "chart:%s:%s:%s"
	KEY_INSIGHTS = "insights:%s"
	KEY_PROFILE  = "profile:%s"
)

const (
	HEADER_REQUEST_ID = "X-Request-Id"
)
