package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"df-server/api"
	"df-server/api/places"
	"df-server/config"
	"df-server/dao/redis"
	"df-server/db"
	"df-server/geo"
	"df-server/pipeline"
	"df-server/server"
	"df-server/server/handlers"
	services "df-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient        db.RedisClient
	RedisVenueDao      *redis.RedisVenueDAO
	PlacesAPI          places.PlacesAPI
	GeoProvider        geo.Provider
	SearchPipeline     *pipeline.SearchPipeline
	VenueService       *services.VenueService
	VenueHandler       *handlers.VenueHandler
	MuxRouter          *mux.Router
	Router             *server.Router
	DiningHttpServer   *server.DiningHttpServer
	VenueWarmerService *services.VenueWarmerService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory redis mock")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize Redis Venue DAO
	redisVenueDao := redis.NewRedisVenueDAO(redisClient,
		config.VENUE_DETAILS_CACHE_TTL_MINUTES*time.Minute)

	// Initialize Places API - fixture-backed mock outside prod
	var placesAPI places.PlacesAPI
	if env != "prod" {
		placesAPI = places.NewPlacesApiClientMock()
		log.Printf("Using mock places api")
	} else {
		log.Printf("Using prod places api")
		httpClient := api.NewHTTPClient(config.PLACES_ENDPOINT_BASE_V1)
		placesAPI = places.NewPlacesApiClient(httpClient)
		placesAPI.SetCredentials(config.PlacesAPIKey())
	}

	// Position fallback for requests without coordinates
	geoProvider := geo.NewStaticProvider(config.DEFAULT_POSITION_LAT, config.DEFAULT_POSITION_LNG)

	// Initialize scoring pipeline with the external distance formula
	searchPipeline := pipeline.NewSearchPipeline(geo.HaversineMeters)

	// Initialize service layer
	venueService := services.NewVenueService(redisVenueDao, placesAPI, searchPipeline, nil)

	// Initialize venue handler
	venueHandler := handlers.NewVenueHandler(venueService, geoProvider)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(venueHandler, muxRouter)

	// initialize dining http server
	diningHttpServer := server.NewDiningHttpServer(router, muxRouter)

	venueWarmerService := services.NewVenueWarmerService(redisVenueDao, placesAPI)

	return &Container{
		RedisClient:        redisClient,
		RedisVenueDao:      redisVenueDao,
		PlacesAPI:          placesAPI,
		GeoProvider:        geoProvider,
		SearchPipeline:     searchPipeline,
		VenueService:       venueService,
		VenueHandler:       venueHandler,
		MuxRouter:          muxRouter,
		Router:             router,
		DiningHttpServer:   diningHttpServer,
		VenueWarmerService: venueWarmerService,
	}
}
