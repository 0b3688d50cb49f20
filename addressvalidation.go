package gomaps

import (
	"context"
	"fmt"

	"github.com/gomaps/client-go/internal/ratelimit"
)

// PostalAddress is the structured input to address validation, following
// the google.type.PostalAddress shape.
type PostalAddress struct {
	// RegionCode is the CLDR country code, e.g. "US".
	RegionCode string `json:"regionCode,omitempty"`
	// Locality is the city or town.
	Locality string `json:"locality,omitempty"`
	// AdministrativeArea is the state or province.
	AdministrativeArea string   `json:"administrativeArea,omitempty"`
	PostalCode         string   `json:"postalCode,omitempty"`
	AddressLines       []string `json:"addressLines"`
}

// AddressValidationRequest describes an address validation call.
type AddressValidationRequest struct {
	Address PostalAddress `json:"address"`
	// EnableUSPSCASS requests USPS CASS processing for US addresses.
	EnableUSPSCASS bool `json:"enableUspsCass,omitempty"`
	// PreviousResponseID links a re-validation to an earlier response.
	PreviousResponseID string `json:"previousResponseId,omitempty"`
}

// AddressValidationResponse is the Address Validation API response. Unlike
// the classic APIs there is no embedded status field; failures arrive as
// non-2xx HTTP responses.
type AddressValidationResponse struct {
	Result     *ValidationResult `json:"result"`
	ResponseID string            `json:"responseId"`
}

// StatusError implements the application-status hook for the retry
// wrapper; this API reports failures through the HTTP status code only.
func (r *AddressValidationResponse) StatusError() error {
	return nil
}

// ValidationResult is the verdict and the cleaned-up address.
type ValidationResult struct {
	Verdict Verdict          `json:"verdict"`
	Address ValidatedAddress `json:"address"`
	Geocode *GeocodeInfo     `json:"geocode,omitempty"`
}

// Verdict summarizes the validation outcome.
type Verdict struct {
	// InputGranularity and ValidationGranularity are levels such as
	// "PREMISE" or "ROUTE".
	InputGranularity         string `json:"inputGranularity,omitempty"`
	ValidationGranularity    string `json:"validationGranularity,omitempty"`
	AddressComplete          bool   `json:"addressComplete,omitempty"`
	HasUnconfirmedComponents bool   `json:"hasUnconfirmedComponents,omitempty"`
	HasInferredComponents    bool   `json:"hasInferredComponents,omitempty"`
}

// ValidatedAddress is the corrected, formatted address.
type ValidatedAddress struct {
	FormattedAddress string        `json:"formattedAddress"`
	PostalAddress    PostalAddress `json:"postalAddress"`
}

// GeocodeInfo locates the validated address. The Address Validation API
// uses the google.type.LatLng field names rather than the classic lat/lng.
type GeocodeInfo struct {
	Location struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	PlaceID string `json:"placeId,omitempty"`
}

// ValidateAddress validates and corrects a postal address.
func (c *Client) ValidateAddress(ctx context.Context, req *AddressValidationRequest) (*AddressValidationResponse, error) {
	if len(req.Address.AddressLines) == 0 {
		return nil, fmt.Errorf("at least one address line is required")
	}

	var resp AddressValidationResponse
	apis := []ratelimit.API{ratelimit.All, ratelimit.AddressValidation}
	if err := c.apiClient.PostJSON(ctx, apis, c.validationURL, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
