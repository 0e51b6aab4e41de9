package models

import "time"

type Conversation struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	IsGroup   bool      `gorm:"default:false" json:"is_group"`
	Title     string    `json:"title"`
	CreatedBy uint64    `gorm:"not null;index" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`

	Creator User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Conversation) PK() uint64      { return c.ID }
func (c *Conversation) SetPK(id uint64) { c.ID = id }

// ConversationParticipant links a user into a conversation. One row per
// (conversation, user) pair.
type ConversationParticipant struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID uint64    `gorm:"not null;uniqueIndex:idx_conversation_user" json:"conversation_id"`
	UserID         uint64    `gorm:"not null;uniqueIndex:idx_conversation_user" json:"user_id"`
	JoinedAt       time.Time `gorm:"autoCreateTime" json:"joined_at"`

	Conversation Conversation `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"-"`
	User         User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *ConversationParticipant) PK() uint64      { return p.ID }
func (p *ConversationParticipant) SetPK(id uint64) { p.ID = id }

type Message struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID uint64    `gorm:"not null;index" json:"conversation_id"`
	SenderID       uint64    `gorm:"not null;index" json:"sender_id"`
	Content        string    `gorm:"not null" json:"content"`
	AttachmentURL  string    `json:"attachment_url"`
	IsEdited       bool      `gorm:"default:false" json:"is_edited"`
	CreatedAt      time.Time `json:"created_at"`

	Conversation Conversation `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"-"`
	Sender       User         `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
}

func (m *Message) PK() uint64      { return m.ID }
func (m *Message) SetPK(id uint64) { m.ID = id }
