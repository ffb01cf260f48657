// Package config loads application configuration from environment variables
// into annotated Go structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing files are ignored),
// after which the environment is parsed into any struct using `env` field
// tags. Required values that are absent fail the load, which callers are
// expected to treat as a startup failure rather than a per-request one.
//
// # Usage
//
//	type MongoConfig struct {
//	    URL  string `env:"MONGODB_URL,required"`
//	    Name string `env:"DB_NAME,required"`
//	}
//
//	var cfg MongoConfig
//	config.MustLoad(&cfg)
//
// Sentinel errors (ErrNilPointer, ErrParsingConfig) can be matched with
// errors.Is.
package config
