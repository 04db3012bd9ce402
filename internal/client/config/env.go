package config

// Environment variables read by parseEnv.
const (
	EnvAPIURL    = "APOLLO_URL"
	EnvStore     = "SESSION_STORE"
	EnvStorePath = "SESSION_STORE_PATH"
	EnvRedisAddr = "REDIS_ADDR"
	EnvLogLevel  = "LOG_LEVEL"
)

// parseEnv overlays cfg with non-empty environment variables.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	for name, dst := range map[string]*string{
		EnvAPIURL:    &cfg.APIURL,
		EnvStore:     &cfg.StoreDriver,
		EnvStorePath: &cfg.StorePath,
		EnvRedisAddr: &cfg.RedisAddr,
		EnvLogLevel:  &cfg.LogLevel,
	} {
		if v, ok := lookup(name); ok {
			overlay(dst, v)
		}
	}
}
