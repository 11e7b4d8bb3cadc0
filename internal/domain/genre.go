package domain

// Genre is the typed projection of a Genre node. ID is the internal engine id
// kept as a legacy lookup key while genre nodes have no external identity.
type Genre struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}
