package server

import "time"

// Config holds configuration for the HTTP server and project identity.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// ProjectName is the display name of the release project.
	ProjectName string `mapstructure:"project_name" default:"365 Days of Sound"`
	// Artist is the artist name shown in the catalog envelope.
	Artist string `mapstructure:"artist" default:""`
	// StartDate is the calendar date of day 1, formatted YYYY-MM-DD.
	StartDate string `mapstructure:"start_date" default:"2026-01-01"`
}

// ParseStartDate parses the configured start date in the local timezone.
// Calendar arithmetic on the result stays in local time so that derived
// release dates don't shift a day across timezone offsets.
func (c Config) ParseStartDate() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", c.StartDate, time.Local)
}
