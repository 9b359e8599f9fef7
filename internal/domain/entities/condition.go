package entities

// Condition is a named emergency type mapped to the specialties a
// hospital must offer to treat it.
type Condition struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Emergency   bool     `json:"emergency"`
	Specialties []string `json:"specialties"`
	Priority    int      `json:"priority"`
}
