package entities

// BoundingBox is an axis-aligned geographic box in decimal degrees.
// Both bounds are inclusive.
type BoundingBox struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LngMin float64 `json:"lng_min"`
	LngMax float64 `json:"lng_max"`
}

// Contains reports whether the point lies inside the box
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax && lng >= b.LngMin && lng <= b.LngMax
}

// Region is a named service area with its own hospital directory.
// Regions are static configuration loaded once at process start; the
// order of regions in configuration is the bounding-box priority order.
type Region struct {
	Name      string           `json:"name"`
	BBox      BoundingBox      `json:"bbox"`
	Hospitals []HospitalRecord `json:"hospitals"`
}
