package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"oh-server/api"
	"oh-server/api/maps"
	"oh-server/clock"
	"oh-server/config"
	redisdao "oh-server/dao/redis"
	"oh-server/db"
	"oh-server/extract"
	"oh-server/server"
	"oh-server/server/handlers"
	services "oh-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient         db.RedisClient
	RedisHoursDao       *redisdao.RedisHoursDAO
	MapsPageAPI         maps.MapsPageAPI
	Clock               clock.Clock
	Extractor           *extract.Extractor
	HoursCacheService   *services.HoursCacheService
	AvailabilityService *services.AvailabilityService
	HoursRefresher      *services.HoursRefresherService
	HoursHandler        *handlers.HoursHandler
	AdminHandler        *handlers.AdminHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	OpenHoursHttpServer *server.OpenHoursHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewHoursRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Hours DAO
	redisHoursDao := redisdao.NewRedisHoursDAO(redisClient)

	// Initialize the maps page client - fixture-backed outside prod
	var mapsPageAPI maps.MapsPageAPI
	if env != "prod" {
		mapsPageAPI = maps.NewMapsPageClientMock()
		log.Printf("Using mock maps page client")
	} else {
		log.Printf("Using prod maps page client")
		pageFetcher := api.NewPageFetcher(
			config.PAGE_FETCH_USER_AGENT,
			config.PAGE_FETCH_TIMEOUT_SECONDS*time.Second,
		)
		mapsPageAPI = maps.NewMapsPageClient(pageFetcher)
	}

	// Region clock for all availability evaluation
	regionClock := clock.NewRegionClock(config.TARGET_TIMEZONE)

	// Extraction strategy chain
	extractor := extract.NewExtractor(config.EXTRACTION_MIN_WEEKDAYS)

	// Initialize service layer
	hoursCacheService := services.NewHoursCacheService(
		redisHoursDao,
		mapsPageAPI,
		extractor,
		regionClock,
		config.StalenessThreshold(),
	)
	availabilityService := services.NewAvailabilityService(regionClock)
	hoursRefresher := services.NewHoursRefresherService(
		redisHoursDao,
		hoursCacheService,
		config.REFRESH_MAX_CONCURRENCY,
		config.REFRESH_INTER_REQUEST_DELAY_MS*time.Millisecond,
	)

	// Initialize handlers
	hoursHandler := handlers.NewHoursHandler(hoursCacheService, availabilityService)
	adminHandler := handlers.NewAdminHandler(hoursRefresher, hoursCacheService, config.AdminSecret())

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(hoursHandler, adminHandler, muxRouter)

	// initialize open hours server
	openHoursHttpServer := server.NewOpenHoursHttpServer(router, muxRouter, config.SERVER_ADDRESS)

	return &Container{
		RedisClient:         redisClient,
		RedisHoursDao:       redisHoursDao,
		MapsPageAPI:         mapsPageAPI,
		Clock:               regionClock,
		Extractor:           extractor,
		HoursCacheService:   hoursCacheService,
		AvailabilityService: availabilityService,
		HoursRefresher:      hoursRefresher,
		HoursHandler:        hoursHandler,
		AdminHandler:        adminHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		OpenHoursHttpServer: openHoursHttpServer,
	}
}
