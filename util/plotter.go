package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"oh-server/models"
)

// PlotWeeklySchedule generates an HTML file rendering a place's opening
// window per weekday, for eyeballing scraped schedules against the live page.
func PlotWeeklySchedule(entry models.CacheEntry, outputPath string) {
	days := make([]string, 0, 7)
	openHours := make([]opts.BarData, 0, 7)
	closeHours := make([]opts.BarData, 0, 7)

	for weekday, day := range entry.Schedule {
		days = append(days, models.WeekdayNames[weekday])
		if day.Closed {
			openHours = append(openHours, opts.BarData{Value: 0, Name: "Closed"})
			closeHours = append(closeHours, opts.BarData{Value: 0, Name: "Closed"})
			continue
		}
		closeMinute := day.CloseMinute
		if day.CrossesMidnight() {
			// Render past-midnight closes beyond hour 24 so the bar shows the
			// real window length.
			closeMinute += models.MinutesPerDay
		}
		openHours = append(openHours, opts.BarData{Value: float64(day.OpenMinute) / 60.0})
		closeHours = append(closeHours, opts.BarData{Value: float64(closeMinute) / 60.0})
	}

	// Create a new bar chart.
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Schedule: " + entry.DisplayName,
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    entry.DisplayName,
			Subtitle: "Last refreshed: " + entry.LastRefreshed.Format("2006-01-02 15:04"),
		}),
	)

	bar.SetXAxis(days).
		AddSeries("Opens (hour)", openHours).
		AddSeries("Closes (hour)", closeHours)

	// Create an HTML file to render the chart.
	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Weekly schedule chart generated: " + outputPath)
}
