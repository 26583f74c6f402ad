package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/techxchange/internal/adapter/storage"
	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// mapError turns driver errors into domain sentinels and leaves everything else untouched.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDataNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return domain.ErrConflictingData
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
			return domain.ErrOrderConcurrentWrite
		}
	}
	return err
}

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Insert("users").
		Columns("id", "full_name", "email", "phone_number", "password", "role", "created_at").
		Values(user.ID, user.FullName, user.Email, user.PhoneNumber, user.Password, user.Role, user.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}

	return user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *Repository) getUser(ctx context.Context, where sq.Eq) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "full_name", "email", "phone_number", "password", "role", "created_at").
		From("users").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PhoneNumber,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	return &user, nil
}
