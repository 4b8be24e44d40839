package config

import (
	"flag"
	"os"
	"time"

	"github.com/moodframe/moodframe/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-e int      verification token validity, minutes
//	-w int      verification rate-limit window, minutes
//	-m int      verification rate-limit max requests per window
//	-u string   mail API endpoint URL
//	-k string   mail API key
//	-l string   verification link base URL
//
// Args are first filtered with flagx.FilterArgs so flags owned by other
// components (or the test runner) do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-r", "-e", "-w", "-m", "-u", "-k", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessMinutes := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshMinutes := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")
	verificationMinutes := fs.Int("e", int(config.VerificationTokenValidityDuration.Minutes()), "verification token validity (in minutes)")
	windowMinutes := fs.Int("w", int(config.VerifyRateLimitWindow.Minutes()), "verification rate-limit window (in minutes)")

	fs.IntVar(&config.VerifyRateLimitMaxRequests, "m", config.VerifyRateLimitMaxRequests, "verification rate-limit max requests")
	fs.StringVar(&config.MailAPIEndpoint, "u", config.MailAPIEndpoint, "mail API endpoint")
	fs.StringVar(&config.MailAPIKey, "k", config.MailAPIKey, "mail API key")
	fs.StringVar(&config.VerificationLinkBase, "l", config.VerificationLinkBase, "verification link base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessMinutes) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshMinutes) * time.Minute
	config.VerificationTokenValidityDuration = time.Duration(*verificationMinutes) * time.Minute
	config.VerifyRateLimitWindow = time.Duration(*windowMinutes) * time.Minute
}
