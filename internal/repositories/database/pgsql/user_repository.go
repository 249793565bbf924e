package pgsql

import (
	"context"

	"github.com/barrique/barrique_backend/internal/apperrors"
	"github.com/barrique/barrique_backend/internal/core/domain"
	portsrepo "github.com/barrique/barrique_backend/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool pgxPool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, password_hash, name, created_at, last_updated_at`

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, password_hash, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + userColumns
	rows, err := r.Pool.Query(ctx, query, user.Username, user.PasswordHash, user.Name)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save user "+user.Username, err)
	}
	saved, err := collectOne[domain.User](rows, "user")
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("username " + user.Username + " already exists")
		}
		return nil, err
	}
	return saved, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query user", err)
	}
	return collectOne[domain.User](rows, "user")
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query user", err)
	}
	return collectOne[domain.User](rows, "user")
}
