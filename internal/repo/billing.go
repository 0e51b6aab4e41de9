package repo

import (
	"game-platform/internal/models"

	"gorm.io/gorm"
)

type PlanRepository struct {
	*Store[models.SubscriptionPlan, *models.SubscriptionPlan]
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{Store: NewStore[models.SubscriptionPlan, *models.SubscriptionPlan](db)}
}

// ListByAuthor returns plans in store order, optionally restricted to one
// author. The plan representation embeds the author, so it is preloaded.
func (r *PlanRepository) ListByAuthor(authorID uint64) ([]models.SubscriptionPlan, error) {
	q := r.DB().Preload("Author")
	if authorID != 0 {
		q = q.Where("author_id = ?", authorID)
	}

	var plans []models.SubscriptionPlan
	if err := q.Find(&plans).Error; err != nil {
		return nil, translate(err)
	}
	return plans, nil
}

func (r *PlanRepository) GetWithAuthor(id uint64) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	if err := r.DB().Preload("Author").First(&plan, id).Error; err != nil {
		return nil, translate(err)
	}
	return &plan, nil
}

type SubscriptionRepository struct {
	*Store[models.UserSubscription, *models.UserSubscription]
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{Store: NewStore[models.UserSubscription, *models.UserSubscription](db)}
}

type PurchaseRepository struct {
	*Store[models.Purchase, *models.Purchase]
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{Store: NewStore[models.Purchase, *models.Purchase](db)}
}

type TransactionRepository struct {
	*Store[models.PaymentTransaction, *models.PaymentTransaction]
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{Store: NewStore[models.PaymentTransaction, *models.PaymentTransaction](db)}
}
