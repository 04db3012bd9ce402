// Package config loads runtime configuration for the account CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment: APOLLO_URL, SESSION_STORE, SESSION_STORE_PATH, REDIS_ADDR, LOG_LEVEL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   GraphQL endpoint url
//	-d string   session store driver: sqlite, redis or memory
//	-s string   sqlite session file
//	-r string   redis address (host:port)
//	-t int      request timeout in seconds, 0 for none
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:4000",
//	  "store_driver": "sqlite",
//	  "store_path": "session.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
package config
