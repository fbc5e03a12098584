package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"oh-server/config"
	"oh-server/di"
	"oh-server/models"
	"oh-server/util"
)

// plotCachedSchedule renders one cached entry for manual inspection.
func plotCachedSchedule(container *di.Container, placeLink string) {
	entry, err := container.RedisHoursDao.GetEntry(placeLink)
	if err != nil || entry == nil {
		log.Printf("No cached entry to plot for %s: %v", placeLink, err)
		return
	}
	util.PlotWeeklySchedule(*entry, "weekly_schedule.html")
}

// testStatusLookup fetches and evaluates one place end to end.
func testStatusLookup(container *di.Container, placeLink, name string) {
	log.Println("Running: testStatusLookup")
	ref := models.PlaceReference{PlaceLink: placeLink, DisplayName: name}
	schedule, stale, err := container.HoursCacheService.GetSchedule(ref, false)
	if err != nil {
		log.Println("Error while running testStatusLookup: ", err)
		return
	}

	open, minutes := container.AvailabilityService.StatusNow(schedule)
	log.Printf("open=%v stale=%v minutes_until_close=%v", open, stale, minutes)
}

func main() {
	env := os.Getenv("OH_ENV")
	if env == "" {
		env = "prod"
	}
	container := di.NewContainer(env)

	// testStatusLookup(container, "https://maps.app.goo.gl/example", "Test Venue")
	// plotCachedSchedule(container, "https://maps.app.goo.gl/example")

	fmt.Println("refreshing!")
	if err := container.HoursRefresher.RefreshAll(false); err != nil {
		log.Printf("Initial refresh failed: %v", err)
	}
	fmt.Println("starting periodic job!")
	container.HoursRefresher.StartPeriodicJob(config.HOURS_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.OpenHoursHttpServer.Start()
	fmt.Println("server stopped!")
}
