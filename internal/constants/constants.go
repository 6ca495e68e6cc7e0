package constants

// Canvas geometry
const (
	BannerWidth  = 1368
	BannerHeight = 176
)

// File Names
const (
	AppConfigFileName = "mcbanner.toml"
	LogFileName       = "mcbanner.log"
	DefaultOutputName = "banner"
)

// Folder Names
const (
	AssetsDirName = "assets"
)

// ConfigVersion is the schema version written to new config files.
const ConfigVersion = "1.1.0"
