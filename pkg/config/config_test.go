package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_CatalogConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("CATALOG_SOURCE", "postgres")
	os.Setenv("CATALOG_REGIONS_PATH", "/etc/finder/regions.json")
	os.Setenv("CATALOG_DEFAULT_REGION", "jamshedpur")
	defer func() {
		os.Unsetenv("CATALOG_SOURCE")
		os.Unsetenv("CATALOG_REGIONS_PATH")
		os.Unsetenv("CATALOG_DEFAULT_REGION")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Catalog.Source)
	assert.Equal(t, "/etc/finder/regions.json", cfg.Catalog.RegionsPath)
	assert.Equal(t, "jamshedpur", cfg.Catalog.DefaultRegion)
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("CATALOG_SOURCE")
	os.Unsetenv("CATALOG_DEFAULT_REGION")
	os.Unsetenv("SCORING_ICU_NORM")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, "ranchi", cfg.Catalog.DefaultRegion)
	assert.Equal(t, 10, cfg.Scoring.ICUNorm)
	assert.Equal(t, "http://localhost:8108", cfg.Typesense.URL)
}

func TestLoad_ScoringICUNorm(t *testing.T) {
	os.Setenv("SCORING_ICU_NORM", "5")
	defer os.Unsetenv("SCORING_ICU_NORM")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 5, cfg.Scoring.ICUNorm)
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "app",
		Password: "secret",
		Database: "hospital_finder",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=hospital_finder sslmode=disable",
		db.DatabaseDSN())
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6379}
	assert.Equal(t, "cache:6379", r.RedisAddr())
}
