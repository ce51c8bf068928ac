package history

import "time"

// Outcome values recorded per plan request.
const (
	OutcomeOK                = "ok"
	OutcomeInvalidRequest    = "invalid_request"
	OutcomeUpstreamFailure   = "upstream_failure"
	OutcomeMalformedResponse = "malformed_response"
)

// Record is one audited plan request.
type Record struct {
	ID           int64     `json:"id"`
	Capability   string    `json:"capability"`
	Destination  string    `json:"destination"`
	DurationDays int       `json:"duration_days"`
	Outcome      string    `json:"outcome"`
	CreatedAt    time.Time `json:"created_at"`
}
