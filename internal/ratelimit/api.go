package ratelimit

// API selects a Google Maps Platform API category for rate limiting. The All
// category is observed in addition to the per-API category on every call.
type API string

// API categories.
const (
	All               API = "All"
	Directions        API = "Directions"
	DistanceMatrix    API = "Distance Matrix"
	Elevation         API = "Elevation"
	Geocoding         API = "Geocoding"
	Places            API = "Places"
	PlacesNew         API = "Places New"
	TimeZone          API = "Time Zone"
	AddressValidation API = "Address Validation"
)

// String returns the category name as presented in log output.
func (a API) String() string {
	return string(a)
}
