package routetable

// DesiredRoute is one entry of the desired route set. Exactly one of
// Gateway or Instance must be set; validation rejects anything else.
type DesiredRoute struct {
	Cidr     string `json:"cidr"`
	Gateway  string `json:"gateway,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// TagSpec is one user-supplied tag. The implicit Name tag is layered on
// top of these when the table is created.
type TagSpec struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RouteInfo mirrors one remote route entry in the module result.
type RouteInfo struct {
	Cidr     string `json:"cidr"`
	Gateway  string `json:"gateway,omitempty"`
	Instance string `json:"instance,omitempty"`
	State    string `json:"state,omitempty"`
}

// Result is the structured outcome reported back to the engine. Id is
// omitted when no table was ever bound (state=absent against a table that
// does not exist, or a creation skipped by check mode). Routes is only
// populated for state=present.
type Result struct {
	Changed bool        `json:"changed"`
	Id      string      `json:"id,omitempty"`
	Name    string      `json:"name"`
	Routes  []RouteInfo `json:"routes,omitempty"`
}
