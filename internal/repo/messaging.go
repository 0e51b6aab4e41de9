package repo

import (
	"game-platform/internal/models"

	"gorm.io/gorm"
)

type ConversationRepository struct {
	*Store[models.Conversation, *models.Conversation]
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{Store: NewStore[models.Conversation, *models.Conversation](db)}
}

type ParticipantRepository struct {
	*Store[models.ConversationParticipant, *models.ConversationParticipant]
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{Store: NewStore[models.ConversationParticipant, *models.ConversationParticipant](db)}
}

type MessageRepository struct {
	*Store[models.Message, *models.Message]
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{Store: NewStore[models.Message, *models.Message](db)}
}

type NotificationRepository struct {
	*Store[models.Notification, *models.Notification]
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{Store: NewStore[models.Notification, *models.Notification](db)}
}
