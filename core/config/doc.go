// Package config provides configuration management for the rates service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for the routing reference tables
//   - Storage: S3/MinIO credentials and bucket settings for rate file archival
//   - Log: Logging level and format
//   - Mail: SMTP reporter settings
//   - Rates: master-data cache TTL, temp path and artifact prefix
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
