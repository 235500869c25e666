package mailsniper

import "encoding/json"

// DNSInfo holds the DNS facts the server gathered for an email domain.
type DNSInfo struct {
	// MXServers lists the domain's mail exchangers in server order.
	// It is empty, never nil, when the domain has none.
	MXServers []string
	// HasARootRecord reports whether the bare domain has an A record.
	HasARootRecord bool
}

// DNSInfoFromMap decodes a DNSInfo from the "dns" object of a verification
// response. Missing or mistyped fields take their zero value.
func DNSInfoFromMap(data map[string]any) DNSInfo {
	return DNSInfo{
		MXServers:      stringSliceField(data, "mx_servers"),
		HasARootRecord: boolField(data, "has_a_root_record"),
	}
}

// ToMap renders the DNSInfo with its wire field names.
func (d DNSInfo) ToMap() map[string]any {
	mx := make([]string, len(d.MXServers))
	copy(mx, d.MXServers)
	return map[string]any{
		"mx_servers":        mx,
		"has_a_root_record": d.HasARootRecord,
	}
}

// MarshalJSON implements json.Marshaler using the wire field names.
func (d DNSInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}
