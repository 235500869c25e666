package mailsniper

import "encoding/json"

// EmailVerificationResult is the outcome of verifying a single address.
// It is a pure data struct; it keeps no reference to the response it was
// decoded from.
type EmailVerificationResult struct {
	Email  string
	User   string // local part
	Domain string

	IsValid          bool
	IsDisposable     bool
	IsPublicProvider bool
	IsUniversity     bool
	IsSpam           bool

	// Risk is the server's 0-100 risk score. It is passed through unchecked.
	Risk int

	DNS DNSInfo

	// Quota is decoded from the response headers. It is nil when the
	// header mapping was empty.
	Quota *QuotaInfo
}

// EmailVerificationResultFromMap decodes a verification response body.
// headers are the lower-cased response headers; when the mapping is
// non-empty, Quota is populated from them and missing quota headers read as 0.
func EmailVerificationResultFromMap(data map[string]any, headers map[string]string) EmailVerificationResult {
	var quota *QuotaInfo
	if len(headers) > 0 {
		q := QuotaInfoFromHeaders(headers)
		quota = &q
	}

	return EmailVerificationResult{
		Email:            stringField(data, "email"),
		User:             stringField(data, "user"),
		Domain:           stringField(data, "domain"),
		IsValid:          boolField(data, "is_valid"),
		IsDisposable:     boolField(data, "is_disposable"),
		IsPublicProvider: boolField(data, "is_public_provider"),
		IsUniversity:     boolField(data, "is_university"),
		IsSpam:           boolField(data, "is_spam"),
		Risk:             intField(data, "risk"),
		DNS:              DNSInfoFromMap(mapField(data, "dns")),
		Quota:            quota,
	}
}

// ToMap renders the result with its wire field names. The "quota" key is
// present only when Quota is non-nil.
func (r EmailVerificationResult) ToMap() map[string]any {
	m := map[string]any{
		"email":              r.Email,
		"user":               r.User,
		"domain":             r.Domain,
		"is_valid":           r.IsValid,
		"is_disposable":      r.IsDisposable,
		"is_public_provider": r.IsPublicProvider,
		"is_university":      r.IsUniversity,
		"is_spam":            r.IsSpam,
		"risk":               r.Risk,
		"dns":                r.DNS.ToMap(),
	}
	if r.Quota != nil {
		m["quota"] = r.Quota.ToMap()
	}
	return m
}

// MarshalJSON implements json.Marshaler.
func (r EmailVerificationResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}
