package models

import "time"

// Notification is an in-app notification addressed to a user. The related
// entity reference is loose: type plus id, no foreign key.
type Notification struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            uint64    `gorm:"not null;index" json:"user_id"`
	Type              string    `gorm:"not null" json:"type"`
	Title             string    `gorm:"not null" json:"title"`
	Message           string    `json:"message"`
	RelatedEntityType string    `json:"related_entity_type"`
	RelatedEntityID   uint64    `json:"related_entity_id"`
	IsRead            bool      `gorm:"default:false" json:"is_read"`
	CreatedAt         time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (n *Notification) PK() uint64      { return n.ID }
func (n *Notification) SetPK(id uint64) { n.ID = id }
