package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountcli/internal/flagx"
	"github.com/dmitrijs2005/accountcli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// The timeout uses timex.Duration so it can be written as "5s" or as
// integer nanoseconds. Empty fields leave the current value untouched.
type JsonConfig struct {
	APIURL         string          `json:"api_url"`
	StoreDriver    string          `json:"store_driver"`
	StorePath      string          `json:"store_path"`
	RedisAddr      string          `json:"redis_addr"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       string          `json:"log_level"`
}

// parseJson overlays cfg with values from the file named by -c or -config.
// Without the flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	overlay(&cfg.APIURL, jc.APIURL)
	overlay(&cfg.StoreDriver, jc.StoreDriver)
	overlay(&cfg.StorePath, jc.StorePath)
	overlay(&cfg.RedisAddr, jc.RedisAddr)
	overlay(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
