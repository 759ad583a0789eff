package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-registry/internal/config"
	"user-registry/internal/domain"
)

func TestOpenRepositoryJSON(t *testing.T) {
	var cfg config.Config
	cfg.Store.Driver = config.DriverJSON
	cfg.Store.Path = filepath.Join(t.TempDir(), "usuarios.json")

	users, closeFn, err := openRepository(context.Background(), cfg, logrus.New())
	require.NoError(t, err)
	defer closeFn()

	data, err := os.ReadFile(cfg.Store.Path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	loaded, err := users.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestOpenRepositorySQLite(t *testing.T) {
	ctx := context.Background()
	var cfg config.Config
	cfg.Store.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "userreg.db")

	users, closeFn, err := openRepository(ctx, cfg, logrus.New())
	require.NoError(t, err)
	defer closeFn()

	want := []domain.User{{FullName: "Ana Souza", Username: "ana", Sex: domain.SexFemale, Age: 31}}
	require.NoError(t, users.Save(ctx, want))

	got, err := users.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewLogger(t *testing.T) {
	var cfg config.Config
	cfg.Log.Level = "info"
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "userreg.log")

	logger, closeFn, err := newLogger(cfg)
	require.NoError(t, err)
	logger.Info("hello")
	closeFn()

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")

	cfg.Log.Level = "loud"
	_, _, err = newLogger(cfg)
	assert.Error(t, err)
}

func TestBuildStorageRequiresBucket(t *testing.T) {
	_, err := buildStorage(context.Background(), config.Config{}, logrus.New())
	assert.EqualError(t, err, "backup bucket is required")
}

func TestProgressPrinter(t *testing.T) {
	var buf bytes.Buffer
	report := progressPrinter(&buf)
	report(0, 4)
	report(4, 4)
	assert.Equal(t, "\ruploaded 0/4 bytes\ruploaded 4/4 bytes\n", buf.String())
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "userreg version dev\n", buf.String())
}

func TestHelpListsLocales(t *testing.T) {
	assert.Contains(t, rootCmd.Long, "Supported locales: pt-BR, en-US (default pt-BR).")
}
