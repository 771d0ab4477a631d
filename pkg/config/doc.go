// Package config loads typed configuration from environment variables.
//
// Struct fields are mapped with caarlos0/env tags. The first call to Load reads
// a .env file from the working directory if one exists (via joho/godotenv);
// values already present in the environment win.
//
//	type CLIConfig struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    MaskType int    `env:"KRKIT_MASK_TYPE" envDefault:"1"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// Load caches one value per type, so repeated calls are cheap and always
// return the same configuration. Parse skips the cache and accepts an explicit
// environment map, which keeps tests independent of the process environment.
package config
