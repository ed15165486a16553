package core

import (
	"time"
)

// ConfigInput is the platform section of the configuration file
type ConfigInput struct {
	FQDN           string   `yaml:"fqdn"`
	JWTSecret      string   `yaml:"jwtSecret"`
	TokenTTL       string   `yaml:"tokenTTL"`
	Admins         []string `yaml:"admins"`
	Registration   string   `yaml:"registration"` // open, closed
	CaptchaSitekey string   `yaml:"captchaSitekey"`
	CaptchaSecret  string   `yaml:"captchaSecret"`
}

// Config is the runtime configuration shared by services
type Config struct {
	FQDN          string
	JWTSecret     string
	TokenTTL      time.Duration
	Admins        []string
	Registration  string
	SiteKey       string
	CaptchaSecret string
}

const defaultTokenTTL = 24 * time.Hour

func SetupConfig(base ConfigInput) Config {

	ttl := defaultTokenTTL
	if base.TokenTTL != "" {
		parsed, err := time.ParseDuration(base.TokenTTL)
		if err != nil {
			panic(err)
		}
		ttl = parsed
	}

	registration := base.Registration
	if registration == "" {
		registration = "open"
	}

	return Config{
		FQDN:          base.FQDN,
		JWTSecret:     base.JWTSecret,
		TokenTTL:      ttl,
		Admins:        base.Admins,
		Registration:  registration,
		SiteKey:       base.CaptchaSitekey,
		CaptchaSecret: base.CaptchaSecret,
	}
}
