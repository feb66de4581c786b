package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-env-prefix prefix of the app-scoped environment variable sources
//	-dotenv-dir directory with the .env and .env.<appid> files
//	-remote-url base URL of the remote configuration service
//	-remote-token bearer token for the remote configuration service
//	-remote-timeout remote read timeout (e.g., "5s")
//	-cache-ttl resolution cache freshness window (e.g., "5m")
//	-cache-size resolution cache entry cap
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var envPrefix string
	var dotEnvDir string
	var remoteBaseURL string
	var remoteToken string
	var remoteTimeout time.Duration
	var cacheTTL time.Duration
	var cacheSize int
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&envPrefix, "env-prefix", "", "App-scoped env var prefix")
	flag.StringVar(&dotEnvDir, "dotenv-dir", "", "Directory with .env files")
	flag.StringVar(&remoteBaseURL, "remote-url", "", "Remote configuration service base URL")
	flag.StringVar(&remoteToken, "remote-token", "", "Remote configuration service token")
	flag.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote read timeout (e.g., 5s)")
	flag.DurationVar(&cacheTTL, "cache-ttl", 0, "Resolution cache TTL (e.g., 5m)")
	flag.IntVar(&cacheSize, "cache-size", 0, "Resolution cache entry cap")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Resolver: Resolver{
			EnvPrefix:     envPrefix,
			DotEnvDir:     dotEnvDir,
			RemoteBaseURL: remoteBaseURL,
			RemoteToken:   remoteToken,
			RemoteTimeout: remoteTimeout,
			CacheTTL:      cacheTTL,
			CacheSize:     cacheSize,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
