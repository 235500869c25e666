package mailsniper

import "encoding/json"

// UsageInfo is the account usage returned by the usage endpoint.
//
// Unlike QuotaInfo, PercentageUsed and IsApproachingLimit are taken from
// the server as-is and never recomputed.
type UsageInfo struct {
	Total              int
	Used               int
	Remaining          int
	PercentageUsed     float64
	IsApproachingLimit bool
}

// UsageInfoFromMap decodes a UsageInfo from a usage response body.
// Missing or mistyped fields take their zero value.
func UsageInfoFromMap(data map[string]any) UsageInfo {
	return UsageInfo{
		Total:              intField(data, "total"),
		Used:               intField(data, "used"),
		Remaining:          intField(data, "remaining"),
		PercentageUsed:     floatField(data, "percentage_used"),
		IsApproachingLimit: boolField(data, "is_approaching_limit"),
	}
}

// ToMap renders the UsageInfo with its wire field names.
func (u UsageInfo) ToMap() map[string]any {
	return map[string]any{
		"total":                u.Total,
		"used":                 u.Used,
		"remaining":            u.Remaining,
		"percentage_used":      u.PercentageUsed,
		"is_approaching_limit": u.IsApproachingLimit,
	}
}

// MarshalJSON implements json.Marshaler.
func (u UsageInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.ToMap())
}
