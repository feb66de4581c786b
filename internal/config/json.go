package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Resolver struct {
		EnvPrefix     string   `json:"env_prefix"`
		DotEnvDir     string   `json:"dotenv_dir"`
		RemoteBaseURL string   `json:"remote_base_url"`
		RemoteToken   string   `json:"remote_token"`
		RemoteTimeout Duration `json:"remote_timeout"`
		CacheTTL      Duration `json:"cache_ttl"`
		CacheSize     int      `json:"cache_size"`
	} `json:"resolver,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Resolver: Resolver{
			EnvPrefix:     jsonCfg.Resolver.EnvPrefix,
			DotEnvDir:     jsonCfg.Resolver.DotEnvDir,
			RemoteBaseURL: jsonCfg.Resolver.RemoteBaseURL,
			RemoteToken:   jsonCfg.Resolver.RemoteToken,
			RemoteTimeout: time.Duration(jsonCfg.Resolver.RemoteTimeout),
			CacheTTL:      time.Duration(jsonCfg.Resolver.CacheTTL),
			CacheSize:     jsonCfg.Resolver.CacheSize,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
