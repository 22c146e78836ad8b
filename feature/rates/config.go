package rates

// Config holds settings for the rates feature.
type Config struct {
	// CacheTTLSeconds is how long the master routing table stays cached
	// before the next run refetches it.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
	// TempPath is the directory where generated rate files are staged
	// before upload and mailing.
	TempPath string `mapstructure:"temp_path" default:"/tmp/vendor-rates"`
	// Prefix is the object-name prefix for archived rate files.
	Prefix string `mapstructure:"prefix" default:"rates"`
}
