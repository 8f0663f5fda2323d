package catalog

// Config holds configuration for the catalog feature.
type Config struct {
	// ManifestPath is the path (or bucket object name) of the manifest JSON.
	ManifestPath string `mapstructure:"manifest_path" default:"./data/manifest.json"`
	// DataDir is the directory (or bucket prefix) holding the dataset exports.
	DataDir string `mapstructure:"data_dir" default:"./data"`
	// OutputPath is where the built catalog artifact JSON is written.
	OutputPath string `mapstructure:"output_path" default:"./public/releases.json"`
	// AudioDir is the local audio tree scanned by manifest generation.
	AudioDir string `mapstructure:"audio_dir" default:"./audio"`
	// CoverDir is the local cover tree scanned by manifest generation.
	CoverDir string `mapstructure:"cover_dir" default:"./covers"`
	// FromBucket loads the manifest and datasets from object storage instead
	// of the local filesystem.
	FromBucket bool `mapstructure:"from_bucket" default:"false"`
	// Website, Instagram and YouTube feed the socials block of the artifact.
	Website   string `mapstructure:"website" default:""`
	Instagram string `mapstructure:"instagram" default:""`
	YouTube   string `mapstructure:"youtube" default:""`
}
