package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"promptpix/internal/config"
	"promptpix/internal/domain"
	"promptpix/internal/repository"
	"promptpix/internal/storage"
)

var (
	ErrCreationNotFound = errors.New("creation not found")
	ErrNotOwner         = errors.New("not authorized to delete this creation")
	ErrNotAdmin         = errors.New("admin role required")
)

const (
	pickedCacheKey = "creations:picked"
	pickedCacheTTL = 5 * time.Minute
	pickedCacheMax = 50
)

type CreationService interface {
	SaveCreation(ctx context.Context, userID int64, upload domain.Upload, input domain.SaveCreationInput) (*domain.Creation, error)
	GetUserCreations(ctx context.Context, userID int64, params domain.PaginationParams) ([]domain.Creation, error)
	GetFeedCreations(ctx context.Context, sort domain.FeedSort, params domain.PaginationParams) ([]domain.Creation, error)
	GetPickedCreations(ctx context.Context, limit int) ([]domain.Creation, error)
	ToggleAdminPick(ctx context.Context, creationID, actingUserID int64) (*domain.AdminPickStatus, error)
	LikeCreation(ctx context.Context, creationID, userID int64) (bool, error)
	UnlikeCreation(ctx context.Context, creationID, userID int64) (bool, error)
	CheckIfLiked(ctx context.Context, creationID, userID int64) (bool, error)
	DeleteCreation(ctx context.Context, creationID, actingUserID int64) (*domain.Creation, error)
}

type creationService struct {
	creationRepo repository.CreationRepository
	userRepo     repository.UserRepository
	store        storage.Store
	redis        *redis.Client
	cfg          *config.Config
}

func NewCreationService(creationRepo repository.CreationRepository, userRepo repository.UserRepository, store storage.Store, redis *redis.Client, cfg *config.Config) CreationService {
	return &creationService{
		creationRepo: creationRepo,
		userRepo:     userRepo,
		store:        store,
		redis:        redis,
		cfg:          cfg,
	}
}

func (s *creationService) SaveCreation(ctx context.Context, userID int64, upload domain.Upload, input domain.SaveCreationInput) (*domain.Creation, error) {
	name := uuid.New().String() + s.fileExtension(upload)

	mediaURL, err := s.store.Save(ctx, name, upload.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	creation := &domain.Creation{
		UserID:    userID,
		MediaURL:  mediaURL,
		MediaType: mediaTypeOf(upload.ContentType),
		Prompt:    input.Prompt,
		Gender:    input.Gender,
		AgeGroup:  input.AgeGroup,
		IsPublic:  input.IsPublic,
	}

	if err := s.creationRepo.Create(ctx, creation); err != nil {
		_ = s.store.Remove(ctx, mediaURL)
		return nil, err
	}

	return creation, nil
}

// fileExtension takes the extension from the uploaded filename, falling back
// to the configured content-type mapping for blobs uploaded without a name.
func (s *creationService) fileExtension(upload domain.Upload) string {
	if ext := filepath.Ext(upload.Filename); ext != "" {
		return ext
	}
	if upload.ContentType != "" {
		return s.cfg.MediaExtensions[upload.ContentType]
	}
	return ""
}

func mediaTypeOf(contentType string) domain.MediaType {
	if strings.HasPrefix(contentType, "video") {
		return domain.MediaTypeVideo
	}
	return domain.MediaTypeImage
}

func (s *creationService) GetUserCreations(ctx context.Context, userID int64, params domain.PaginationParams) ([]domain.Creation, error) {
	return s.creationRepo.GetByUser(ctx, userID, params)
}

func (s *creationService) GetFeedCreations(ctx context.Context, sort domain.FeedSort, params domain.PaginationParams) ([]domain.Creation, error) {
	return s.creationRepo.GetFeed(ctx, sort, params)
}

func (s *creationService) GetPickedCreations(ctx context.Context, limit int) ([]domain.Creation, error) {
	if limit < 1 {
		limit = 9
	}

	if cached, ok := s.pickedFromCache(ctx, limit); ok {
		return cached, nil
	}

	picked, err := s.creationRepo.GetPicked(ctx, pickedCacheMax)
	if err != nil {
		return nil, err
	}

	s.cachePicked(ctx, picked)

	if len(picked) > limit {
		picked = picked[:limit]
	}
	return picked, nil
}

func (s *creationService) pickedFromCache(ctx context.Context, limit int) ([]domain.Creation, bool) {
	if s.redis == nil {
		return nil, false
	}

	raw, err := s.redis.Get(ctx, pickedCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var picked []domain.Creation
	if err := json.Unmarshal(raw, &picked); err != nil {
		return nil, false
	}

	if len(picked) > limit {
		picked = picked[:limit]
	}
	return picked, true
}

func (s *creationService) cachePicked(ctx context.Context, picked []domain.Creation) {
	if s.redis == nil {
		return
	}
	if raw, err := json.Marshal(picked); err == nil {
		_ = s.redis.Set(ctx, pickedCacheKey, raw, pickedCacheTTL).Err()
	}
}

func (s *creationService) invalidatePickedCache(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, pickedCacheKey).Err()
	}
}

func (s *creationService) ToggleAdminPick(ctx context.Context, creationID, actingUserID int64) (*domain.AdminPickStatus, error) {
	actingUser, err := s.userRepo.GetByID(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	if actingUser == nil || !actingUser.IsAdmin() {
		return nil, ErrNotAdmin
	}

	creation, err := s.creationRepo.ToggleAdminPick(ctx, creationID)
	if err != nil {
		return nil, err
	}
	if creation == nil {
		return nil, ErrCreationNotFound
	}

	s.invalidatePickedCache(ctx)

	return &domain.AdminPickStatus{
		ID:              creation.ID,
		IsPickedByAdmin: creation.IsPickedByAdmin,
	}, nil
}

func (s *creationService) LikeCreation(ctx context.Context, creationID, userID int64) (bool, error) {
	return s.creationRepo.AddLike(ctx, userID, creationID)
}

func (s *creationService) UnlikeCreation(ctx context.Context, creationID, userID int64) (bool, error) {
	return s.creationRepo.RemoveLike(ctx, userID, creationID)
}

func (s *creationService) CheckIfLiked(ctx context.Context, creationID, userID int64) (bool, error) {
	return s.creationRepo.IsLiked(ctx, userID, creationID)
}

func (s *creationService) DeleteCreation(ctx context.Context, creationID, actingUserID int64) (*domain.Creation, error) {
	creation, err := s.creationRepo.GetByID(ctx, creationID)
	if err != nil {
		return nil, err
	}
	if creation == nil {
		return nil, ErrCreationNotFound
	}

	if creation.UserID != actingUserID {
		return nil, ErrNotOwner
	}

	deleted, err := s.creationRepo.DeleteByID(ctx, creationID)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		// Lost a race with a concurrent delete.
		return nil, ErrCreationNotFound
	}

	// Externally hosted media is left untouched; a blob already gone is
	// tolerated inside Remove.
	if s.store.Owns(deleted.MediaURL) {
		if err := s.store.Remove(ctx, deleted.MediaURL); err != nil {
			return nil, err
		}
	}

	s.invalidatePickedCache(ctx)

	return deleted, nil
}
