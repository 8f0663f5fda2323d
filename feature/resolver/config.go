package resolver

import "time"

// Config holds configuration for the resolver feature.
type Config struct {
	// TimeoutMS is the per-candidate probe timeout in milliseconds.
	TimeoutMS int `mapstructure:"timeout_ms" default:"2000"`
	// LocalAudioDir is the on-disk audio tree used as the last fallback.
	LocalAudioDir string `mapstructure:"local_audio_dir" default:"./audio"`
	// LocalCoverDir is the on-disk cover tree used as the last fallback.
	LocalCoverDir string `mapstructure:"local_cover_dir" default:"./covers"`
}

// Timeout returns the per-candidate probe timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
