package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/moodframe/moodframe/internal/flagx"
	"github.com/moodframe/moodframe/internal/timex"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
// Interval fields use timex.Duration so the file can say "24h" or "5m".
type JsonConfig struct {
	EndpointAddrHTTP                  string         `json:"endpoint_addr_http"`
	DatabaseDSN                       string         `json:"database_dsn"`
	SecretKey                         string         `json:"secret_key"`
	AccessTokenValidityDuration       timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration      timex.Duration `json:"refresh_token_validity_duration"`
	VerificationTokenValidityDuration timex.Duration `json:"verification_token_validity_duration"`
	VerifyRateLimitWindow             timex.Duration `json:"verify_rate_limit_window"`
	VerifyRateLimitMaxRequests        int            `json:"verify_rate_limit_max_requests"`
	MailAPIEndpoint                   string         `json:"mail_api_endpoint"`
	MailAPIKey                        string         `json:"mail_api_key"`
	MailSenderName                    string         `json:"mail_sender_name"`
	MailSenderEmail                   string         `json:"mail_sender_email"`
	VerificationLinkBase              string         `json:"verification_link_base"`
	SecureCookies                     bool           `json:"secure_cookies"`
}

// parseJson loads configuration from the JSON file named by -c/-config.
// When neither flag is set nothing is loaded. An unreadable or invalid
// file panics: a config file that exists but cannot be used is fatal.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenValidityDuration.Duration)
	config.VerificationTokenValidityDuration = time.Duration(c.VerificationTokenValidityDuration.Duration)
	config.VerifyRateLimitWindow = time.Duration(c.VerifyRateLimitWindow.Duration)
	config.VerifyRateLimitMaxRequests = c.VerifyRateLimitMaxRequests
	config.MailAPIEndpoint = c.MailAPIEndpoint
	config.MailAPIKey = c.MailAPIKey
	config.MailSenderName = c.MailSenderName
	config.MailSenderEmail = c.MailSenderEmail
	config.VerificationLinkBase = c.VerificationLinkBase
	config.SecureCookies = c.SecureCookies
}
