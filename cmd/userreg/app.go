package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"user-registry/internal/config"
	"user-registry/internal/repository"
	"user-registry/internal/repository/jsonfile"
	"user-registry/internal/repository/sqlite"
	"user-registry/internal/storage"
)

// app holds what every subcommand needs after startup.
type app struct {
	cfg    config.Config
	logger *logrus.Logger
	users  repository.UserRepository
	close  func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	users, closeStore, err := openRepository(ctx, cfg, logger)
	if err != nil {
		closeLog()
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		users:  users,
		close: func() {
			closeStore()
			closeLog()
		},
	}, nil
}

// newLogger keeps log output off stdout, which belongs to the menu.
func newLogger(cfg config.Config) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	closeFn := func() {}
	if path := strings.TrimSpace(cfg.Log.File); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(f)
		closeFn = func() { _ = f.Close() }
	}
	return logger, closeFn, nil
}

func openRepository(ctx context.Context, cfg config.Config, logger *logrus.Logger) (repository.UserRepository, func(), error) {
	var (
		users   repository.UserRepository
		closeFn = func() {}
	)

	switch cfg.Store.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		users = sqlite.NewUserRepository(db)
		closeFn = func() { _ = db.Close() }
		logger.Debugf("using sqlite store %s", cfg.Database.Path)
	default:
		users = jsonfile.NewUserRepository(cfg.Store.Path, logger)
		logger.Debugf("using json store %s", cfg.Store.Path)
	}

	if err := users.Init(ctx); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("init user repository: %w", err)
	}
	return users, closeFn, nil
}

func buildStorage(ctx context.Context, cfg config.Config, logger *logrus.Logger) (storage.Service, error) {
	if cfg.Backup.Bucket == "" {
		return nil, fmt.Errorf("backup bucket is required")
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Backup.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Backup.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Backup.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s)", cfg.Backup.Bucket, cfg.Backup.Region)
	return storage.NewS3Service(client), nil
}

func progressPrinter(w io.Writer) func(done, total int64) {
	return func(done, total int64) {
		fmt.Fprintf(w, "\ruploaded %d/%d bytes", done, total)
		if done == total {
			fmt.Fprintln(w)
		}
	}
}
