// Package gomaps provides a typed Go client for several Google Maps
// Platform REST APIs: Directions, Distance Matrix, Elevation, Geocoding,
// Places text search (classic and New), Time Zone, and Address Validation.
//
// Every call runs through client-side rate limiting (optional, per API
// category) and a retry loop that classifies failures as transient or
// permanent: transport faults, HTTP 5xx, HTTP 429, and Google's
// UNKNOWN_ERROR status are retried with exponential backoff; everything
// else surfaces immediately.
//
// Basic usage:
//
//	client, err := gomaps.New("your-api-key",
//	    gomaps.WithRateLimit(gomaps.APIAll, 50, time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Geocode(ctx, &gomaps.GeocodingRequest{
//	    Address: "1600 Amphitheatre Parkway, Mountain View, CA",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(resp.Results[0].Geometry.Location)
package gomaps
