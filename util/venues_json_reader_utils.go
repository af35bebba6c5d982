package util

import (
	"encoding/json"
	"fmt"
	"os"

	"df-server/models"
	"df-server/models/venue"
)

// ReadNearbySearchResponseFromJSON loads a NearbySearchResponse from JSON on disk.
func ReadNearbySearchResponseFromJSON(filePath string) (*models.NearbySearchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.NearbySearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal NearbySearchResponse: %w", err)
	}
	return &resp, nil
}

// ReadVenueDetailsResponseFromJSON loads a VenueDetailsResponse from JSON on disk.
func ReadVenueDetailsResponseFromJSON(filePath string) (*models.VenueDetailsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.VenueDetailsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal VenueDetailsResponse: %w", err)
	}
	return &resp, nil
}

// ReadVenueFromJSON loads a single Venue from JSON on disk.
func ReadVenueFromJSON(filePath string) (*venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var v venue.Venue
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Venue: %w", err)
	}
	return &v, nil
}

// PrintNearbySearchResponsePartially prints key fields of a NearbySearchResponse.
func PrintNearbySearchResponsePartially(resp *models.NearbySearchResponse) {
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Venues returned: %d\n", resp.VenuesN)
	if len(resp.Venues) > 0 {
		v := resp.Venues[0]
		fmt.Printf("First venue: %s at %s (%.6f, %.6f)\n", v.VenueName, v.VenueAddress, v.VenueLat, v.VenueLng)
	}
}

// PrintRankedVenuesPartially prints the ranked list one line per venue.
func PrintRankedVenuesPartially(venues []venue.Venue) {
	for i, v := range venues {
		congestionLabel := ""
		if v.Congestion != nil {
			congestionLabel = v.Congestion.Label
		}
		fmt.Printf("%2d. %s rating=%.1f (%d) %.0fm open=%s %s\n",
			i+1, v.VenueName, v.Rating, v.UserRatingsTotal, v.DistanceMeters, v.OpenNow, congestionLabel)
	}
}
