package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"df-server/models/venue"
)

// PlotRankedVenues generates an HTML file rendering a ranked result set
// as a geo scatter, labeled by rank. Debug tooling, not part of the
// serving path.
func PlotRankedVenues(venues []venue.Venue, outPath string) {
	points := make([]opts.GeoData, 0, len(venues))
	for i, v := range venues {
		points = append(points, opts.GeoData{
			Name:  fmt.Sprintf("#%d %s", i+1, v.VenueName),
			Value: []float64{v.VenueLng, v.VenueLat},
		})
	}

	geoChart := charts.NewGeo()
	geoChart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Ranked Venues Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geoChart.AddSeries("RankedVenues", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := geoChart.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Ranked venues map generated: " + outPath)
}
