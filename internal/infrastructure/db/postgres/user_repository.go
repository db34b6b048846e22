package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/joblyhq/jobs-api/internal/core/domain"
)

// UserRepository persists users. The stored password column always holds a
// bcrypt hash; hashing happens in the service layer.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "username, password, first_name, last_name, email, photo_url, is_admin"

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.PublicUser, error) {
	const query = "SELECT username, first_name, last_name, email, photo_url FROM users ORDER BY username"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.PublicUser, 0)
	for rows.Next() {
		var u domain.PublicUser
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.PhotoURL); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// FindOne returns the full record including the password hash; callers
// outside authentication must project through User.Public.
func (r *UserRepository) FindOne(ctx context.Context, username string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE username = $1", userColumns)

	var u domain.User
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Email, &u.PhotoURL, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (username, password, first_name, last_name, email, photo_url, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, userColumns)

	var created domain.User
	err := r.db.QueryRowContext(ctx, query,
		user.Username,
		user.Password,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PhotoURL,
		user.IsAdmin,
	).Scan(&created.Username, &created.Password, &created.FirstName, &created.LastName,
		&created.Email, &created.PhotoURL, &created.IsAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

func (r *UserRepository) Update(ctx context.Context, username string, fields domain.UpdateFields) (*domain.User, error) {
	query, args, err := PartialUpdate("users", "username", username, fields)
	if err != nil {
		return nil, err
	}

	var u domain.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Email, &u.PhotoURL, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		if isNotNullViolation(err) {
			return nil, domain.ErrNullColumn
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE username = $1", username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
