package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"user-registry/internal/domain"
	"user-registry/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	position INTEGER PRIMARY KEY,
	full_name TEXT NOT NULL,
	username TEXT NOT NULL,
	sex TEXT NOT NULL,
	age INTEGER NOT NULL
);
`

// UserRepository keeps the registry in a users table ordered by position.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Load(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT full_name, username, sex, age
FROM users
ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// Save replaces every row in one transaction.
func (r *UserRepository) Save(ctx context.Context, users []domain.User) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO users (position, full_name, username, sex, age)
VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert user: %w", err)
	}
	defer stmt.Close()

	for i, user := range users {
		if _, err = stmt.ExecContext(ctx, i, user.FullName, user.Username, string(user.Sex), user.Age); err != nil {
			return fmt.Errorf("insert user %s: %w", user.Username, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit users: %w", err)
	}
	return nil
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var (
		user domain.User
		sex  string
	)
	if err := row.Scan(
		&user.FullName,
		&user.Username,
		&sex,
		&user.Age,
	); err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	user.Sex = domain.Sex(sex)
	return &user, nil
}
