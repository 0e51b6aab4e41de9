package models

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

type PurchaseContentType string

const (
	PurchasePost         PurchaseContentType = "post"
	PurchaseGalleryImage PurchaseContentType = "gallery_image"
)

type TransactionType string

const (
	TransactionSubscription TransactionType = "subscription"
	TransactionOneTime      TransactionType = "one_time_purchase"
	TransactionPayout       TransactionType = "payout"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionRefunded  TransactionStatus = "refunded"
)

// SubscriptionPlan is a creator's monthly subscription offering.
type SubscriptionPlan struct {
	ID            uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID      uint64  `gorm:"not null;index" json:"author_id"`
	Title         string  `gorm:"not null" json:"title"`
	Description   string  `json:"description"`
	PricePerMonth float64 `gorm:"type:decimal(10,2);not null" json:"price_per_month"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`

	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *SubscriptionPlan) PK() uint64      { return p.ID }
func (p *SubscriptionPlan) SetPK(id uint64) { p.ID = id }

type UserSubscription struct {
	ID           uint64             `gorm:"primaryKey;autoIncrement" json:"id"`
	SubscriberID uint64             `gorm:"not null;index" json:"subscriber_id"`
	PlanID       uint64             `gorm:"not null;index" json:"plan_id"`
	Status       SubscriptionStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	StartsAt     time.Time          `gorm:"not null" json:"starts_at"`
	EndsAt       time.Time          `gorm:"not null" json:"ends_at"`
	CreatedAt    time.Time          `json:"created_at"`

	Subscriber User             `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
	Plan       SubscriptionPlan `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"-"`
}

func (s *UserSubscription) PK() uint64      { return s.ID }
func (s *UserSubscription) SetPK(id uint64) { s.ID = id }

// Purchase records a one-time content purchase. ContentID is a loose
// reference into posts or gallery images depending on ContentType.
type Purchase struct {
	ID            uint64              `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint64              `gorm:"not null;uniqueIndex:idx_user_content" json:"user_id"`
	ContentType   PurchaseContentType `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_content" json:"content_type"`
	ContentID     uint64              `gorm:"not null;uniqueIndex:idx_user_content" json:"content_id"`
	PurchasePrice float64             `gorm:"type:decimal(10,2);not null" json:"purchase_price"`
	PurchasedAt   time.Time           `gorm:"autoCreateTime" json:"purchased_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Purchase) PK() uint64      { return p.ID }
func (p *Purchase) SetPK(id uint64) { p.ID = id }

type PaymentTransaction struct {
	ID              uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint64            `gorm:"not null;index" json:"user_id"`
	Type            TransactionType   `gorm:"type:varchar(20);not null" json:"type"`
	Amount          float64           `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency        string            `gorm:"type:varchar(3);default:'RUB'" json:"currency"`
	Status          TransactionStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentSystem   string            `json:"payment_system"`
	PaymentSystemID string            `json:"payment_system_id"`
	Description     string            `json:"description"`
	CreatedAt       time.Time         `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *PaymentTransaction) PK() uint64      { return t.ID }
func (t *PaymentTransaction) SetPK(id uint64) { t.ID = id }
