package newsletter

// Config holds configuration for the newsletter feature.
type Config struct {
	// Enabled toggles the feature's routes.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// StorePath is the JSON file subscribers are persisted to.
	StorePath string `mapstructure:"store_path" default:"./data/subscribers.json"`
}
