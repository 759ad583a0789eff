package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"user-registry/internal/domain"
	"user-registry/internal/repository"
)

// UserRepository stores users in a single JSON document.
type UserRepository struct {
	path   string
	logger logrus.FieldLogger
}

func NewUserRepository(path string, logger logrus.FieldLogger) repository.UserRepository {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &UserRepository{path: path, logger: logger.WithField("store", path)}
}

// Init creates the document as an empty array if it does not exist yet.
func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat store: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	if err := os.WriteFile(r.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	r.logger.Debug("created empty store")
	return nil
}

// Load never fails: a missing or unreadable document is an empty registry.
func (r *UserRepository) Load(ctx context.Context) ([]domain.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.WithError(err).Warn("read store, treating as empty")
		return []domain.User{}, nil
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		r.logger.WithError(err).Warn("parse store, treating as empty")
		return []domain.User{}, nil
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Save replaces the document through a temp file and rename.
func (r *UserRepository) Save(ctx context.Context, users []domain.User) error {
	data, err := Encode(users)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store: %w", err)
	}

	r.logger.WithField("count", len(users)).Debug("saved store")
	return nil
}

// Encode renders users as a 2-space indented array without HTML escaping,
// so names containing &, < or > are written as typed.
func Encode(users []domain.User) ([]byte, error) {
	if users == nil {
		users = []domain.User{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(users); err != nil {
		return nil, fmt.Errorf("encode users: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
