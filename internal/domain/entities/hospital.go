package entities

// BloodStock represents a hospital blood bank stock level
type BloodStock string

const (
	BloodStockHigh   BloodStock = "high"
	BloodStockMedium BloodStock = "medium"
	BloodStockLow    BloodStock = "low"
)

// HospitalRecord represents a hospital in a regional directory.
// Optional resource signals are pointers so that absent values can be
// distinguished from zeroes; RecordNormalizer fills them with neutral
// defaults before scoring.
type HospitalRecord struct {
	ID               string     `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	Address          string     `json:"address" db:"address"`
	Phone            string     `json:"phone,omitempty" db:"phone"`
	DistanceValue    float64    `json:"distance_value" db:"distance_km"`
	Rating           float64    `json:"rating" db:"rating"`
	EmergencyCapable bool       `json:"emergency" db:"emergency_capable"`
	Open             bool       `json:"open" db:"open"`
	WaitTime         string     `json:"wait_time,omitempty" db:"wait_time"`
	BedsAvailable    int        `json:"beds_available" db:"beds_available"`
	TotalBeds        int        `json:"total_beds" db:"total_beds"`
	BloodUnits       int        `json:"blood_units,omitempty" db:"blood_units"`
	ICUAvailable     *int       `json:"icu_available,omitempty" db:"icu_available"`
	OccupancyRate    *float64   `json:"occupancy_rate,omitempty" db:"occupancy_rate"`
	DoctorAvail      *float64   `json:"doctor_availability,omitempty" db:"doctor_availability"`
	BloodBankStock   BloodStock `json:"blood_bank_stock,omitempty" db:"blood_bank_stock"`
	AdmissionChance  *int       `json:"admission_chance,omitempty" db:"-"`
	Specialties      []string   `json:"specialties" db:"-"`
	Facilities       []string   `json:"facilities,omitempty" db:"-"`
	EstimatedArrival string     `json:"estimated_arrival,omitempty" db:"estimated_arrival"`
}

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
