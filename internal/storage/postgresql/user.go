package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragpit/songvote/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ model.UsersRepository = (*UsersRepo)(nil)

type UsersRepo struct {
	baseRepo
}

func (r *UsersRepo) Create(
	ctx context.Context,
	user *model.User,
) (*model.User, error) {
	q := `
		INSERT INTO users (login, password_hash, role)
		VALUES (@login, @password_hash, @role)
		RETURNING id;
	`

	args := pgx.NamedArgs{
		"login":         user.Login,
		"password_hash": user.PasswordHash,
		"role":          user.Role.String(),
	}

	var id int32
	row := r.db.QueryRow(ctx, q, args)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, model.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = int(id)

	return user, nil
}

func (r *UsersRepo) GetByLogin(
	ctx context.Context,
	login string,
) (*model.User, error) {
	q := `
		SELECT id, login, password_hash, role
		FROM users
		WHERE login = $1
	`

	u := &model.User{}
	row := r.db.QueryRow(ctx, q, login)
	if err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by login: %w", err)
	}

	return u, nil
}
