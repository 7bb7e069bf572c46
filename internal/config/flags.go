package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN
//	-r remote dashboard API base URL (client)
//	-cache-path local cache file path (client)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g. "12h", "30m")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-debounce-delay view-state save debounce delay (e.g. "500ms")
//	-sync-interval background activity refresh interval (e.g. "5m")
func ParseFlags() *StructuredConfig {
	return parseFlagsFrom(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
}

func parseFlagsFrom(fs *flag.FlagSet, args []string) *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var remoteAddress string
	var cachePath string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var debounceDelay time.Duration
	var syncInterval time.Duration

	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&remoteAddress, "r", "", "Remote dashboard API base URL")
	fs.StringVar(&cachePath, "cache-path", "", "Local cache file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g. 12h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s, 1m)")
	fs.DurationVar(&debounceDelay, "debounce-delay", 0, "View-state save debounce delay (e.g. 500ms)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background activity refresh interval (e.g. 5m)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Cache: Cache{Path: cachePath},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			DebounceDelay:    debounceDelay,
			AutoSyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
