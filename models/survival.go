package models

import "encoding/json"

// Survival holds the two outputs of the offline survival analysis.
// Each sub-section is independently optional and served verbatim.
type Survival struct {
	KM         json.RawMessage `json:"km,omitempty"`
	CoxSummary json.RawMessage `json:"cox_summary,omitempty"`
}
