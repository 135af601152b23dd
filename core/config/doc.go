// Package config provides configuration management for devserve.
//
// It utilizes Viper for loading configuration from environment variables, with an
// optional .env file overlaid first (godotenv). Defaults come from the `default`
// struct tags of each section.
//
// # Configuration Structure
//
//   - Server: bind host and port, served root, source (local, bucket), index document,
//     browser launch, MIME overrides
//   - Storage: S3/MinIO credentials and bucket for the bucket source
//   - Log: Logging level and format
//
// Keys map to environment variables by upper-casing and replacing dots with
// underscores: server.port is SERVER_PORT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
