package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"user-registry/internal/repository"
	"user-registry/internal/repository/jsonfile"
	"user-registry/internal/storage"
)

// ErrBackupNotConfigured is returned when no bucket is set for snapshots.
var ErrBackupNotConfigured = errors.New("backup bucket is not configured")

// BackupOptions selects where snapshots are written.
type BackupOptions struct {
	Bucket    string
	KeyPrefix string
	// Progress, when set, receives upload byte counts.
	Progress func(done, total int64)
}

// BackupService copies the registry to object storage.
type BackupService interface {
	Snapshot(ctx context.Context) (string, error)
	ListSnapshots(ctx context.Context) ([]storage.ObjectInfo, error)
}

type backupService struct {
	users   repository.UserRepository
	storage storage.Service
	opts    BackupOptions
	now     func() time.Time
}

func NewBackupService(users repository.UserRepository, store storage.Service, opts BackupOptions) BackupService {
	return &backupService{
		users:   users,
		storage: store,
		opts:    opts,
		now:     time.Now,
	}
}

// Snapshot uploads the current collection in the same layout as the JSON store.
func (s *backupService) Snapshot(ctx context.Context) (string, error) {
	if strings.TrimSpace(s.opts.Bucket) == "" {
		return "", ErrBackupNotConfigured
	}

	users, err := s.users.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load users: %w", err)
	}
	data, err := jsonfile.Encode(users)
	if err != nil {
		return "", err
	}

	key := path.Join(s.keyPrefix(), fmt.Sprintf("usuarios-%s.json", s.now().UTC().Format("20060102T150405Z")))
	location, err := s.storage.UploadObject(ctx, bytes.NewReader(data), int64(len(data)), storage.UploadOptions{
		Bucket:           s.opts.Bucket,
		Key:              key,
		ContentType:      "application/json",
		ProgressCallback: s.opts.Progress,
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}
	return location, nil
}

// ListSnapshots returns stored snapshots, newest key first.
func (s *backupService) ListSnapshots(ctx context.Context) ([]storage.ObjectInfo, error) {
	if strings.TrimSpace(s.opts.Bucket) == "" {
		return nil, ErrBackupNotConfigured
	}

	prefix := s.keyPrefix()
	if prefix != "" {
		prefix += "/"
	}
	objects, err := s.storage.ListObjects(ctx, s.opts.Bucket, prefix)
	if err != nil {
		return nil, err
	}
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].Key > objects[j].Key
	})
	return objects, nil
}

func (s *backupService) keyPrefix() string {
	return strings.Trim(s.opts.KeyPrefix, "/")
}
