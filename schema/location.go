package schema

// keySeparator joins country and province for global rows, which carry
// no numeric unique id upstream.
const keySeparator = " / "

// Location identifies one reporting unit of a raw JHU table.
type Location struct {
	UID        string `json:"uid,omitempty"`    // numeric unique id, US tables only
	County     string `json:"county,omitempty"` // Admin2, US tables only
	State      string `json:"state,omitempty"`
	Country    string `json:"country"`
	Population int64  `json:"population,omitempty"` // supplied by the US deaths table only
}

// Key returns the identifier that partitions time-ordered operations so
// a delta is never computed across two reporting units. US rows use the
// upstream UID; global rows concatenate country and province.
func (l Location) Key() string {
	if l.UID != "" {
		return l.UID
	}
	return l.Country + keySeparator + l.State
}
