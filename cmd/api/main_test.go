package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard-api/core/category"
	"newsboard-api/pkg/config"
)

func TestBuildListConfig_Defaults(t *testing.T) {
	cfg, err := buildListConfig(config.ListConfig{PageSize: 25, MaxVisible: 100})

	require.NoError(t, err)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 100, cfg.MaxVisible)
	assert.Equal(t, time.Local, cfg.Location)
	assert.True(t, cfg.Categories.IsKnown(category.Politics))
}

func TestBuildListConfig_TimezoneAndTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - key: tech\n    labels: [\"科技\"]\n"), 0o644))

	cfg, err := buildListConfig(config.ListConfig{
		PageSize:        10,
		MaxVisible:      40,
		ArchiveTimezone: "Asia/Tokyo",
		CategoriesFile:  path,
	})

	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", cfg.Location.String())
	assert.Equal(t, category.Key("tech"), cfg.Categories.Canonicalize("科技"))
	assert.False(t, cfg.Categories.IsKnown(category.Politics))
}

func TestBuildListConfig_Errors(t *testing.T) {
	_, err := buildListConfig(config.ListConfig{ArchiveTimezone: "Mars/Olympus"})
	assert.Error(t, err)

	_, err = buildListConfig(config.ListConfig{CategoriesFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestRun_InvalidConfigurationReturnsError(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	err := run()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRun_ListConfigErrorReturnsAfterOpeningStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "store.db")
	t.Setenv("STORE_TYPE", "sqlite")
	t.Setenv("SQLITE_PATH", dbPath)
	t.Setenv("CATEGORIES_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("LOG_LEVEL", "error")

	err := run()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid list configuration")
	assert.FileExists(t, dbPath)
}
