package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

const sampleConfig = `
server:
  dsn: "host=db user=postgres password=postgres dbname=challenge port=5432 sslmode=disable"
  redisAddr: "redis:6379"
  memcachedAddr: "memcached:11211"
platform:
  fqdn: "challenge.example.com"
  jwtSecret: "secret"
  tokenTTL: "2h"
  admins:
    - "root@example.com"
profile:
  nickname: "challenge"
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	var config Config
	err := config.Load(path)
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, "redis:6379", config.Server.RedisAddr)
	assert.Equal(t, ":8000", config.Server.ListenAddr)
	assert.Equal(t, "challenge", config.Profile.Nickname)

	platform := core.SetupConfig(config.Platform)
	assert.Equal(t, "challenge.example.com", platform.FQDN)
	assert.Equal(t, "open", platform.Registration)
	assert.Equal(t, []string{"root@example.com"}, platform.Admins)
	assert.Equal(t, "2h0m0s", platform.TokenTTL.String())
}

func TestLoadConfigMissing(t *testing.T) {
	var config Config
	assert.Error(t, config.Load(filepath.Join(t.TempDir(), "missing.yaml")))
}
