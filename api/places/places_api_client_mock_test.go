package places

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"df-server/config"
	"df-server/util"
)

func setProjectRoot(t *testing.T) {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("failed to resolve project root: %v", err)
	}
	t.Setenv("PROJECT_ROOT", root)
}

func TestNearbySearch_Mock(t *testing.T) {
	// Arrange
	setProjectRoot(t)
	client := NewPlacesApiClientMock()

	expectedResponse, err := util.ReadNearbySearchResponseFromJSON(
		config.GetResourcePath(config.NEARBY_SEARCH_RESPONSE_RESOURCE))
	if err != nil {
		t.Fatalf("expected no error when reading expected response, got %v", err)
	}

	// Act
	response, err := client.NearbySearch(1.23, 4.56, 1000, "restaurant", "")

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	assert.Equal(t, expectedResponse, response, "Responses dont match")
}

func TestGetVenueDetails_Mock(t *testing.T) {
	// Arrange
	setProjectRoot(t)
	client := NewPlacesApiClientMock()

	expectedResponse, err := util.ReadVenueDetailsResponseFromJSON(
		config.GetResourcePath(config.VENUE_DETAILS_RESPONSE_RESOURCE))
	if err != nil {
		t.Fatalf("expected no error when reading expected response, got %v", err)
	}

	// Act
	response, err := client.GetVenueDetails("124")

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	assert.Equal(t, expectedResponse, response, "Responses dont match")
}
