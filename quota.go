package mailsniper

import (
	"encoding/json"
	"math"
)

// Response headers carrying quota data on verification calls. Header names
// are matched after lower-casing.
const (
	HeaderQuotaTotal     = "x-ratelimit-quota-total"
	HeaderQuotaUsed      = "x-ratelimit-quota-used"
	HeaderQuotaRemaining = "x-ratelimit-quota-remaining"
)

// ApproachingLimitThreshold is the usage percentage at or above which a
// quota is considered close to exhaustion.
const ApproachingLimitThreshold = 80.0

// QuotaInfo is the account quota reported in the headers of a verification
// response. Its percentage is computed locally.
type QuotaInfo struct {
	Total     int
	Used      int
	Remaining int
}

// QuotaInfoFromHeaders decodes a QuotaInfo from lower-cased response
// headers. A missing or non-numeric header yields 0.
func QuotaInfoFromHeaders(headers map[string]string) QuotaInfo {
	return QuotaInfo{
		Total:     headerInt(headers, HeaderQuotaTotal),
		Used:      headerInt(headers, HeaderQuotaUsed),
		Remaining: headerInt(headers, HeaderQuotaRemaining),
	}
}

// PercentageUsed returns Used as a percentage of Total, rounded to two
// decimal places. It returns 0 when Total is 0.
func (q QuotaInfo) PercentageUsed() float64 {
	if q.Total == 0 {
		return 0
	}
	return math.Round(float64(q.Used)/float64(q.Total)*100*100) / 100
}

// IsApproachingLimit reports whether PercentageUsed is at least 80.
func (q QuotaInfo) IsApproachingLimit() bool {
	return q.PercentageUsed() >= ApproachingLimitThreshold
}

// ToMap renders the QuotaInfo, including the derived fields.
func (q QuotaInfo) ToMap() map[string]any {
	return map[string]any{
		"total":                q.Total,
		"used":                 q.Used,
		"remaining":            q.Remaining,
		"percentage_used":      q.PercentageUsed(),
		"is_approaching_limit": q.IsApproachingLimit(),
	}
}

// MarshalJSON implements json.Marshaler.
func (q QuotaInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.ToMap())
}
