package models

import "time"

type Game struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
}

func (g *Game) PK() uint64      { return g.ID }
func (g *Game) SetPK(id uint64) { g.ID = id }

// UserGame ties a user to a game they play. One row per (user, game) pair.
type UserGame struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint64 `gorm:"not null;uniqueIndex:idx_user_game" json:"user_id"`
	GameID        uint64 `gorm:"not null;uniqueIndex:idx_user_game" json:"game_id"`
	PlaytimeHours int    `gorm:"default:0" json:"playtime_hours"`
	CurrentRank   string `json:"current_rank"`
	MaxRank       string `json:"max_rank"`
	IsPrimary     bool   `gorm:"default:false" json:"is_primary"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ug *UserGame) PK() uint64      { return ug.ID }
func (ug *UserGame) SetPK(id uint64) { ug.ID = id }

type Achievement struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserGameID  uint64    `gorm:"not null;index" json:"user_game_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	IconURL     string    `json:"icon_url"`
	UnlockedAt  time.Time `gorm:"autoCreateTime" json:"unlocked_at"`

	UserGame UserGame `gorm:"foreignKey:UserGameID;constraint:OnDelete:CASCADE" json:"-"`
}

func (a *Achievement) PK() uint64      { return a.ID }
func (a *Achievement) SetPK(id uint64) { a.ID = id }
