package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_YamlThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "DB_HOST: db.local\nDB_PORT: \"5432\"\nJWT_SECRET: fromyaml\nIsProd: true\nRATE_LIMIT: 25\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("JWT_SECRET", "fromenv")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	LoadConfigFrom(path)

	assert.Equal(t, "db.local", GetConfig("DB_HOST"))
	assert.Equal(t, "5432", GetConfig("DB_PORT"))
	assert.Equal(t, "fromenv", GetConfig("JWT_SECRET"))
	assert.Equal(t, "true", GetConfig("IsProd"))
	assert.Equal(t, 25, GetConfigInt("RATE_LIMIT", 10))
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, GetConfigList("KAFKA_BROKERS"))
}

func TestLoadConfigFrom_MissingFileKeepsDefaults(t *testing.T) {
	LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, 10, GetConfigInt("RATE_LIMIT", 1))
	assert.Equal(t, "", GetConfig("UNKNOWN"))
}

func TestSetConfig(t *testing.T) {
	LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	SetConfig("SERVER_KEY", "sk")
	SetConfig("RATE_LIMIT", "nope")

	assert.Equal(t, "sk", GetConfig("SERVER_KEY"))
	assert.Equal(t, "10", GetConfig("RATE_LIMIT"))
}
