package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"easynote/internal/model"
	repo "easynote/internal/user/repository"
)

const userColumns = `id, email, password_hash, nickname, avatar_url, created_at, updated_at`

// CreateUser inserts a new user row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, nickname, avatar_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, '', ?, ?)`

	now := time.Now()
	u := model.User{
		ID:           uuid.NewString(),
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		Nickname:     opt.Nickname,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.PasswordHash, u.Nickname, now, now); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email.
// Returns zero-value User (ID == "") when not found — no error for not-found.
func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? LIMIT 1`
	return r.getOne(ctx, "GetUserByEmail", query, email)
}

// GetUserByID retrieves a user by id.
// Returns zero-value User (ID == "") when not found — no error for not-found.
func (r *implRepository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ? LIMIT 1`
	return r.getOne(ctx, "GetUserByID", query, id)
}

func (r *implRepository) getOne(ctx context.Context, method, query string, arg any) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Nickname, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// UpdateUser applies partial profile changes and returns the updated entity.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	const query = `
		UPDATE users
		SET nickname = COALESCE(?, nickname),
		    avatar_url = COALESCE(?, avatar_url),
		    updated_at = ?
		WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, opt.Nickname, opt.AvatarURL, time.Now(), opt.ID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return r.GetUserByID(ctx, opt.ID)
}

// UpdatePassword replaces the stored password hash.
func (r *implRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdatePassword"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
