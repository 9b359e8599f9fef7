package entities

// SortKey selects the ordering of discovery results
type SortKey string

const (
	SortByChance   SortKey = "chance"
	SortByBeds     SortKey = "beds"
	SortByDistance SortKey = "distance"
)

// Valid reports whether the sort key is one of the supported orderings
func (k SortKey) Valid() bool {
	switch k {
	case SortByChance, SortByBeds, SortByDistance:
		return true
	}
	return false
}

// SearchCriteria holds one discovery invocation's filters and ordering.
// Criteria are transient; nothing is retained between calls.
type SearchCriteria struct {
	Query         string     `json:"query,omitempty"`
	Condition     *Condition `json:"condition,omitempty"`
	SortKey       SortKey    `json:"sort_key"`
	EmergencyOnly bool       `json:"emergency_only,omitempty"`
}

// ScoredResult pairs a normalized hospital record with its computed
// admission chance. Breakdown carries the weighted per-signal
// contributions for display and debugging.
type ScoredResult struct {
	Hospital        HospitalRecord     `json:"hospital"`
	AdmissionChance int                `json:"admission_chance"`
	Breakdown       map[string]float64 `json:"breakdown,omitempty"`
}
