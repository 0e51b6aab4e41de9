package models

import "time"

// User is the platform account. Username and email are globally unique.
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	AvatarURL    string    `json:"avatar_url"`
	Bio          string    `json:"bio"`
	Is2FAEnabled bool      `gorm:"column:is_2fa_enabled;default:false" json:"is_2fa_enabled"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) PK() uint64      { return u.ID }
func (u *User) SetPK(id uint64) { u.ID = id }

// Profile holds the optional per-user profile. The user id is the primary
// key, so there is at most one profile per user.
type Profile struct {
	UserID            uint64 `gorm:"primaryKey" json:"user_id"`
	Country           string `json:"country"`
	City              string `json:"city"`
	Timezone          string `json:"timezone"`
	PreferredLanguage string `json:"preferred_language"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Profile) PK() uint64      { return p.UserID }
func (p *Profile) SetPK(id uint64) { p.UserID = id }

// SocialAuth links a user to an external identity provider.
type SocialAuth struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint64    `gorm:"not null;index" json:"user_id"`
	Provider       string    `gorm:"not null;uniqueIndex:idx_provider_user" json:"provider"`
	ProviderUserID string    `gorm:"not null;uniqueIndex:idx_provider_user" json:"provider_user_id"`
	CreatedAt      time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (s *SocialAuth) PK() uint64      { return s.ID }
func (s *SocialAuth) SetPK(id uint64) { s.ID = id }
