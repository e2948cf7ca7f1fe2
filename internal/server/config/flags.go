package config

import (
	"flag"
	"os"
	"time"

	"tasksync/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes (0 = no expiry)
//	-l int      auth endpoint rate limit, requests per minute
//	-b int      auth endpoint rate limit burst
//
// Args are first filtered with flagx.FilterArgs so that flags owned by
// other components (like -c/-config) do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes, 0 disables expiry)")

	fs.IntVar(&config.AuthRatePerMin, "l", config.AuthRatePerMin, "auth rate limit (requests per minute)")
	fs.IntVar(&config.AuthRateBurst, "b", config.AuthRateBurst, "auth rate limit burst")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
