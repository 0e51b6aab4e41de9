// Package presenter maps entities to their external representations. Every
// representation is an explicit field list; related users are embedded as
// their public view, never as full accounts.
package presenter

import (
	"time"

	"game-platform/internal/models"
	"game-platform/internal/repo"
)

// UserPublic is the public view of an account embedded in other
// representations.
type UserPublic struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

func PublicUser(u models.User) UserPublic {
	return UserPublic{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}

type GameResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
}

func Game(g models.Game) GameResponse {
	return GameResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		IconURL:     g.IconURL,
	}
}

type UserGameResponse struct {
	ID            uint64       `json:"id"`
	UserID        uint64       `json:"user_id"`
	GameID        uint64       `json:"game_id"`
	PlaytimeHours int          `json:"playtime_hours"`
	CurrentRank   string       `json:"current_rank"`
	MaxRank       string       `json:"max_rank"`
	IsPrimary     bool         `json:"is_primary"`
	User          UserPublic   `json:"user"`
	Game          GameResponse `json:"game"`
}

func UserGame(ug models.UserGame) UserGameResponse {
	return UserGameResponse{
		ID:            ug.ID,
		UserID:        ug.UserID,
		GameID:        ug.GameID,
		PlaytimeHours: ug.PlaytimeHours,
		CurrentRank:   ug.CurrentRank,
		MaxRank:       ug.MaxRank,
		IsPrimary:     ug.IsPrimary,
		User:          PublicUser(ug.User),
		Game:          Game(ug.Game),
	}
}

// ProfileResponse embeds the owning user, the user's game associations and
// the two read-time aggregates.
type ProfileResponse struct {
	UserID            uint64             `json:"user_id"`
	Country           string             `json:"country"`
	City              string             `json:"city"`
	Timezone          string             `json:"timezone"`
	PreferredLanguage string             `json:"preferred_language"`
	User              UserPublic         `json:"user"`
	UserGames         []UserGameResponse `json:"user_games"`
	FollowersCount    int64              `json:"followers_count"`
	Rating            float64            `json:"rating"`
}

func Profile(d repo.ProfileDetail) ProfileResponse {
	userGames := make([]UserGameResponse, len(d.UserGames))
	for i, ug := range d.UserGames {
		userGames[i] = UserGame(ug)
	}
	return ProfileResponse{
		UserID:            d.Profile.UserID,
		Country:           d.Profile.Country,
		City:              d.Profile.City,
		Timezone:          d.Profile.Timezone,
		PreferredLanguage: d.Profile.PreferredLanguage,
		User:              PublicUser(d.User),
		UserGames:         userGames,
		FollowersCount:    d.FollowersCount,
		Rating:            d.Rating,
	}
}

type PostResponse struct {
	ID              uint64            `json:"id"`
	AuthorID        uint64            `json:"author_id"`
	Title           string            `json:"title"`
	Content         string            `json:"content"`
	PreviewImageURL string            `json:"preview_image_url"`
	AccessType      models.AccessType `json:"access_type"`
	Price           float64           `json:"price"`
	IsPublished     bool              `json:"is_published"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	PublishedAt     *time.Time        `json:"published_at"`
	Author          UserPublic        `json:"author"`
	LikesCount      int64             `json:"likes_count"`
	CommentsCount   int64             `json:"comments_count"`
}

func Post(d repo.PostDetail) PostResponse {
	return PostResponse{
		ID:              d.Post.ID,
		AuthorID:        d.Post.AuthorID,
		Title:           d.Post.Title,
		Content:         d.Post.Content,
		PreviewImageURL: d.Post.PreviewImageURL,
		AccessType:      d.Post.AccessType,
		Price:           d.Post.Price,
		IsPublished:     d.Post.IsPublished,
		CreatedAt:       d.Post.CreatedAt,
		UpdatedAt:       d.Post.UpdatedAt,
		PublishedAt:     d.Post.PublishedAt,
		Author:          PublicUser(d.Post.Author),
		LikesCount:      d.LikesCount,
		CommentsCount:   d.CommentsCount,
	}
}

type PlanResponse struct {
	ID            uint64     `json:"id"`
	AuthorID      uint64     `json:"author_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	PricePerMonth float64    `json:"price_per_month"`
	IsActive      bool       `json:"is_active"`
	Author        UserPublic `json:"author"`
}

func Plan(p models.SubscriptionPlan) PlanResponse {
	return PlanResponse{
		ID:            p.ID,
		AuthorID:      p.AuthorID,
		Title:         p.Title,
		Description:   p.Description,
		PricePerMonth: p.PricePerMonth,
		IsActive:      p.IsActive,
		Author:        PublicUser(p.Author),
	}
}
