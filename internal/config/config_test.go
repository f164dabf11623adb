package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/warbandforge/warband-api/internal/config"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal("info", cfg.LogLevel)
	s.Equal("localhost:6379", cfg.Redis.Address)
	s.Equal(10, cfg.Redis.PoolSize)
	s.False(cfg.Rules.EnforceWeaponFactionRestriction)
}

func (s *ConfigTestSuite) TestEnvironmentOverride() {
	s.T().Setenv("WARBAND_REDIS_ADDRESS", "redis.internal:6380")
	s.T().Setenv("WARBAND_LOG_LEVEL", "debug")

	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal("redis.internal:6380", cfg.Redis.Address)
	s.Equal("debug", cfg.LogLevel)
}

func (s *ConfigTestSuite) TestConfigFile() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "warband.yaml")
	content := []byte("log_level: warn\nredis:\n  address: file.internal:6379\nrules:\n  enforce_weapon_faction_restriction: true\n")
	s.Require().NoError(os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal("warn", cfg.LogLevel)
	s.Equal("file.internal:6379", cfg.Redis.Address)
	s.True(cfg.Rules.EnforceWeaponFactionRestriction)
}

func (s *ConfigTestSuite) TestMissingConfigFile() {
	_, err := config.Load("/nonexistent/warband.yaml")
	s.Error(err)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
