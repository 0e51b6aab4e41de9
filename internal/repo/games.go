package repo

import (
	"game-platform/internal/models"

	"gorm.io/gorm"
)

type GameRepository struct {
	*Store[models.Game, *models.Game]
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{Store: NewStore[models.Game, *models.Game](db)}
}

type UserGameRepository struct {
	*Store[models.UserGame, *models.UserGame]
}

func NewUserGameRepository(db *gorm.DB) *UserGameRepository {
	return &UserGameRepository{Store: NewStore[models.UserGame, *models.UserGame](db)}
}

// Get loads the association with its user and game expanded, since the
// user-game representation embeds both.
func (r *UserGameRepository) Get(id uint64) (*models.UserGame, error) {
	var out models.UserGame
	if err := r.DB().Preload("User").Preload("Game").First(&out, id).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *UserGameRepository) List() ([]models.UserGame, error) {
	var out []models.UserGame
	if err := r.DB().Preload("User").Preload("Game").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *UserGameRepository) Patch(id uint64, fields map[string]interface{}) (*models.UserGame, error) {
	if _, err := r.Store.Patch(id, fields); err != nil {
		return nil, err
	}
	return r.Get(id)
}

type AchievementRepository struct {
	*Store[models.Achievement, *models.Achievement]
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{Store: NewStore[models.Achievement, *models.Achievement](db)}
}
