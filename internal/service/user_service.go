package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"user-registry/internal/domain"
	"user-registry/internal/repository"
)

var (
	// ErrInvalidIdentity covers an empty full name, an empty username or a username with whitespace.
	ErrInvalidIdentity = errors.New("full name and username are required and username cannot contain spaces")
	// ErrFullNameTaken is returned when another record has the same full name, ignoring case.
	ErrFullNameTaken = errors.New("full name already registered")
	// ErrUsernameTaken is returned when another record has exactly the same username.
	ErrUsernameTaken = errors.New("username already registered")
	// ErrInvalidSex is returned for anything other than M or F.
	ErrInvalidSex = errors.New("sex must be M or F")
	// ErrInvalidAge is returned for non-integer ages and ages not greater than domain.MinAge.
	ErrInvalidAge = errors.New("age must be an integer greater than 9")
	// ErrUserNotFound is returned when no record has the requested username.
	ErrUserNotFound = errors.New("user not found")
)

// RegisterRequest carries raw operator input for a new record.
type RegisterRequest struct {
	FullName string
	Username string
	Sex      string
	Age      string
}

// UserService describes the registry operations.
type UserService interface {
	CheckIdentity(ctx context.Context, fullName, username string) error
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Authenticate(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, username string) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// CheckIdentity validates the name pair against the current store without writing.
func (s *userService) CheckIdentity(ctx context.Context, fullName, username string) error {
	users, err := s.users.Load(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	return checkIdentity(users, strings.TrimSpace(fullName), username)
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	fullName := strings.TrimSpace(req.FullName)

	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if err := checkIdentity(users, fullName, req.Username); err != nil {
		return nil, err
	}

	sex, err := ParseSex(req.Sex)
	if err != nil {
		return nil, err
	}
	age, err := ParseAge(req.Age)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		FullName: fullName,
		Username: req.Username,
		Sex:      sex,
		Age:      age,
	}
	users = append(users, user)
	if err := s.users.Save(ctx, users); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}
	return &user, nil
}

// Authenticate only checks that the username exists.
func (s *userService) Authenticate(ctx context.Context, username string) (*domain.User, error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	idx := indexOf(users, username)
	if idx < 0 {
		return nil, ErrUserNotFound
	}
	user := users[idx]
	return &user, nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

// Delete removes the first record with the username and persists the rest.
func (s *userService) Delete(ctx context.Context, username string) (*domain.User, error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	idx := indexOf(users, username)
	if idx < 0 {
		return nil, ErrUserNotFound
	}

	removed := users[idx]
	users = append(users[:idx], users[idx+1:]...)
	if err := s.users.Save(ctx, users); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}
	return &removed, nil
}

// ParseSex accepts exactly m, M, f or F and returns the upper-case value.
func ParseSex(input string) (domain.Sex, error) {
	switch domain.Sex(strings.ToUpper(input)) {
	case domain.SexMale:
		return domain.SexMale, nil
	case domain.SexFemale:
		return domain.SexFemale, nil
	default:
		return "", ErrInvalidSex
	}
}

// ParseAge accepts a base-10 integer greater than domain.MinAge.
func ParseAge(input string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || age <= domain.MinAge {
		return 0, ErrInvalidAge
	}
	return age, nil
}

func checkIdentity(users []domain.User, fullName, username string) error {
	if fullName == "" || username == "" || strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return ErrInvalidIdentity
	}

	folded := foldName(fullName)
	for _, u := range users {
		if foldName(u.FullName) == folded {
			return ErrFullNameTaken
		}
	}
	if indexOf(users, username) >= 0 {
		return ErrUsernameTaken
	}
	return nil
}

func indexOf(users []domain.User, username string) int {
	for i, u := range users {
		if u.Username == username {
			return i
		}
	}
	return -1
}

func foldName(name string) string {
	return cases.Fold().String(name)
}
