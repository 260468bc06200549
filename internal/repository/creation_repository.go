package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"promptpix/internal/domain"
)

type CreationRepository interface {
	Create(ctx context.Context, creation *domain.Creation) error
	GetByID(ctx context.Context, id int64) (*domain.Creation, error)
	GetByUser(ctx context.Context, userID int64, params domain.PaginationParams) ([]domain.Creation, error)
	GetFeed(ctx context.Context, sort domain.FeedSort, params domain.PaginationParams) ([]domain.Creation, error)
	GetPicked(ctx context.Context, limit int) ([]domain.Creation, error)
	ToggleAdminPick(ctx context.Context, id int64) (*domain.Creation, error)
	DeleteByID(ctx context.Context, id int64) (*domain.Creation, error)
	AddLike(ctx context.Context, userID, creationID int64) (bool, error)
	RemoveLike(ctx context.Context, userID, creationID int64) (bool, error)
	IsLiked(ctx context.Context, userID, creationID int64) (bool, error)
}

type creationRepository struct {
	db *sqlx.DB
}

func NewCreationRepository(db *sqlx.DB) CreationRepository {
	return &creationRepository{db: db}
}

func (r *creationRepository) Create(ctx context.Context, creation *domain.Creation) error {
	query := `
		INSERT INTO creations (user_id, media_url, media_type, prompt, gender, age_group, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_picked_by_admin, created_at`

	return r.db.QueryRowxContext(ctx, query,
		creation.UserID, creation.MediaURL, creation.MediaType,
		creation.Prompt, creation.Gender, creation.AgeGroup, creation.IsPublic,
	).Scan(&creation.ID, &creation.IsPickedByAdmin, &creation.CreatedAt)
}

func (r *creationRepository) GetByID(ctx context.Context, id int64) (*domain.Creation, error) {
	var creation domain.Creation
	query := `SELECT * FROM creations WHERE id = $1`

	err := r.db.GetContext(ctx, &creation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &creation, nil
}

func (r *creationRepository) GetByUser(ctx context.Context, userID int64, params domain.PaginationParams) ([]domain.Creation, error) {
	params.Validate()

	creations := []domain.Creation{}
	query := `
		SELECT * FROM creations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &creations, query, userID, params.Limit, params.Offset)
	return creations, err
}

func (r *creationRepository) GetFeed(ctx context.Context, sort domain.FeedSort, params domain.PaginationParams) ([]domain.Creation, error) {
	params.Validate()

	creations := []domain.Creation{}
	query := `
		SELECT * FROM creations
		WHERE is_public = TRUE
		ORDER BY ` + feedOrderClause(sort) + `
		LIMIT $1 OFFSET $2`

	err := r.db.SelectContext(ctx, &creations, query, params.Limit, params.Offset)
	return creations, err
}

// feedOrderClause maps a sort strategy to an ORDER BY expression. Unknown
// strategies fall back to latest-first.
func feedOrderClause(sort domain.FeedSort) string {
	switch sort {
	case domain.FeedSortLatest:
		return "created_at DESC"
	default:
		return "created_at DESC"
	}
}

func (r *creationRepository) GetPicked(ctx context.Context, limit int) ([]domain.Creation, error) {
	creations := []domain.Creation{}
	query := `
		SELECT * FROM creations
		WHERE is_picked_by_admin = TRUE
		ORDER BY created_at DESC
		LIMIT $1`

	err := r.db.SelectContext(ctx, &creations, query, limit)
	return creations, err
}

// ToggleAdminPick flips the curation flag in a single statement so two
// concurrent toggles cannot observe the same prior value.
func (r *creationRepository) ToggleAdminPick(ctx context.Context, id int64) (*domain.Creation, error) {
	var creation domain.Creation
	query := `
		UPDATE creations
		SET is_picked_by_admin = NOT is_picked_by_admin
		WHERE id = $1
		RETURNING *`

	err := r.db.GetContext(ctx, &creation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &creation, nil
}

func (r *creationRepository) DeleteByID(ctx context.Context, id int64) (*domain.Creation, error) {
	var creation domain.Creation
	query := `DELETE FROM creations WHERE id = $1 RETURNING *`

	err := r.db.GetContext(ctx, &creation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &creation, nil
}

func (r *creationRepository) AddLike(ctx context.Context, userID, creationID int64) (bool, error) {
	query := `
		INSERT INTO likes (user_id, creation_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, creation_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, userID, creationID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *creationRepository) RemoveLike(ctx context.Context, userID, creationID int64) (bool, error) {
	query := `DELETE FROM likes WHERE user_id = $1 AND creation_id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, creationID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *creationRepository) IsLiked(ctx context.Context, userID, creationID int64) (bool, error) {
	var liked bool
	query := `SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND creation_id = $2)`

	err := r.db.GetContext(ctx, &liked, query, userID, creationID)
	return liked, err
}
