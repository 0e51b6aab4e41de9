package repo

import (
	"fmt"

	"game-platform/internal/models"

	"gorm.io/gorm"
)

type FollowRepository struct {
	*Store[models.Follow, *models.Follow]
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{Store: NewStore[models.Follow, *models.Follow](db)}
}

type ReviewRepository struct {
	*Store[models.Review, *models.Review]
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{Store: NewStore[models.Review, *models.Review](db)}
}

// Create validates the rating range in the repository so out-of-range values
// fail with ErrValidation regardless of database check-constraint support.
func (r *ReviewRepository) Create(review *models.Review) error {
	if err := validateRating(review.Rating); err != nil {
		return err
	}
	return r.Store.Create(review)
}

func (r *ReviewRepository) Patch(id uint64, fields map[string]interface{}) (*models.Review, error) {
	if v, ok := fields["rating"]; ok {
		rating, ok := toInt(v)
		if !ok {
			return nil, fmt.Errorf("%w: rating must be an integer", ErrValidation)
		}
		if err := validateRating(rating); err != nil {
			return nil, err
		}
		fields["rating"] = rating
	}
	return r.Store.Patch(id, fields)
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	return nil
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
