package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"df-server/config"
	"df-server/di"
	"df-server/models"
	"df-server/util"
)

// testSearchNearby runs one search against the wired service and prints
// the ranked list. Handy against the mock places api.
func testSearchNearby(container *di.Container) {
	log.Println("Running: testSearchNearby")
	criteria := models.DefaultFilterCriteria(config.DEFAULT_SEARCH_RADIUS_METERS)
	ranked, err := container.VenueService.SearchNearby(
		config.DEFAULT_POSITION_LAT, config.DEFAULT_POSITION_LNG, criteria)
	if err != nil {
		log.Println("Error while running testSearchNearby: ", err)
		return
	}
	util.PrintRankedVenuesPartially(ranked)
	// util.PlotRankedVenues(ranked, "ranked_venues_map.html")
}

func main() {
	env := os.Getenv("DF_ENV")
	if env == "" {
		env = "prod"
	}
	container := di.NewContainer(env)

	// testSearchNearby(container)

	fmt.Println("warming venue cache!")
	if err := container.VenueWarmerService.WarmVenues(); err != nil {
		log.Printf("initial warm-up failed: %v", err)
	}
	fmt.Println("starting periodic warmer job!")
	container.VenueWarmerService.StartPeriodicJob(config.VENUE_WARMER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.DiningHttpServer.Start()
}
