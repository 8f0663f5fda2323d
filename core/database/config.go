package database

// Config holds configuration for the song database export connection.
type Config struct {
	// Path is the filesystem path to the SQLite export file.
	// Empty disables the database source entirely.
	Path string `mapstructure:"path" default:""`
	// TimeoutSeconds is the initial ping timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
