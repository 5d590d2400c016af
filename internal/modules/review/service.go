package review

import (
	"context"
	"errors"

	"beautysalon/internal/domain"
	"beautysalon/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	reviews  ReviewRepository
	masters  MasterReader
	services CatalogServiceReader
}

func NewService(reviews ReviewRepository, masters MasterReader, services CatalogServiceReader) *Service {
	return &Service{reviews: reviews, masters: masters, services: services}
}

// Add creates a review after checking its target exists. The insert and
// the master-rating recomputation are one transactional unit inside the
// repository; callers never observe a review without its rating effect.
func (s *Service) Add(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if userID <= 0 || req.MasterID <= 0 || req.Text == "" || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	ok, err := s.masters.Exists(ctx, req.MasterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMasterNotFound
	}

	if req.ServiceID != nil {
		ok, err := s.services.Exists(ctx, *req.ServiceID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrServiceNotFound
		}
	}

	rv := &domain.Review{
		UserID:    userID,
		MasterID:  req.MasterID,
		ServiceID: req.ServiceID,
		Text:      req.Text,
		Rating:    req.Rating,
	}
	if err := s.reviews.CreateWithRating(ctx, rv); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return rv, nil
}

// Update edits the caller's own review; a missing review and someone
// else's review are the same ErrNotFound.
func (s *Service) Update(ctx context.Context, reviewID, userID int64, req UpdateReviewRequest) (*domain.Review, error) {
	if reviewID <= 0 || userID <= 0 || req.Text == "" || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	rv, err := s.reviews.UpdateByOwnerWithRating(ctx, reviewID, userID, req.Text, req.Rating)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, reviewID, userID int64) error {
	if reviewID <= 0 || userID <= 0 {
		return ErrValidation
	}

	if err := s.reviews.DeleteByOwnerWithRating(ctx, reviewID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// List returns reviews newest first; masterID 0 means all masters.
func (s *Service) List(ctx context.Context, masterID int64) ([]domain.ReviewWithNames, error) {
	return s.reviews.ListWithNames(ctx, masterID)
}

// MasterRating aggregates average and count from the review rows. It is
// independent of the cached Master.Rating column and doubles as the
// consistency check for it.
func (s *Service) MasterRating(ctx context.Context, masterID int64) (domain.MasterRating, error) {
	if masterID <= 0 {
		return domain.MasterRating{}, ErrValidation
	}
	return s.reviews.GetMasterRating(ctx, masterID)
}
