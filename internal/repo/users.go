package repo

import (
	"math"
	"strings"

	"game-platform/internal/models"

	"gorm.io/gorm"
)

// Profile list sort orders. Rating and followers are accepted but fall back
// to the default ordering (descending username).
const (
	SortNewest    = "newest"
	SortRating    = "rating"
	SortFollowers = "followers"
)

type UserRepository struct {
	*Store[models.User, *models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Store: NewStore[models.User, *models.User](db)}
}

type SocialAuthRepository struct {
	*Store[models.SocialAuth, *models.SocialAuth]
}

func NewSocialAuthRepository(db *gorm.DB) *SocialAuthRepository {
	return &SocialAuthRepository{Store: NewStore[models.SocialAuth, *models.SocialAuth](db)}
}

// ProfileFilter carries the query parameters of the profile listing.
type ProfileFilter struct {
	Search string
	GameID uint64
	SortBy string
}

// ProfileDetail is a profile with its related data expanded: the owning
// user, the user's game associations and the two read-time aggregates.
type ProfileDetail struct {
	Profile        models.Profile
	User           models.User
	UserGames      []models.UserGame
	FollowersCount int64
	Rating         float64
}

type ProfileRepository struct {
	*Store[models.Profile, *models.Profile]
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{Store: NewStore[models.Profile, *models.Profile](db)}
}

// ListDetailed returns profiles matching the filter, expanded via batched
// queries (one per related table, regardless of result size).
func (r *ProfileRepository) ListDetailed(f ProfileFilter) ([]ProfileDetail, error) {
	q := r.DB().Model(&models.Profile{}).
		Joins("JOIN users ON users.id = profiles.user_id")

	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		gameMatch := r.DB().Model(&models.UserGame{}).
			Select("user_games.user_id").
			Joins("JOIN games ON games.id = user_games.game_id").
			Where("LOWER(games.name) LIKE ?", needle)
		q = q.Where("LOWER(users.username) LIKE ? OR profiles.user_id IN (?)", needle, gameMatch)
	}

	if f.GameID != 0 {
		byGame := r.DB().Model(&models.UserGame{}).
			Select("user_id").
			Where("game_id = ?", f.GameID)
		q = q.Where("profiles.user_id IN (?)", byGame)
	}

	switch f.SortBy {
	case SortNewest:
		q = q.Order("users.created_at DESC")
	case SortRating, SortFollowers:
		// Not implemented as distinct orderings yet; both fall back to the
		// default.
		q = q.Order("users.username DESC")
	default:
		q = q.Order("users.username DESC")
	}

	var profiles []models.Profile
	if err := q.Select("profiles.*").Find(&profiles).Error; err != nil {
		return nil, translate(err)
	}

	return r.expand(profiles)
}

func (r *ProfileRepository) GetDetailed(userID uint64) (*ProfileDetail, error) {
	profile, err := r.Get(userID)
	if err != nil {
		return nil, err
	}

	details, err := r.expand([]models.Profile{*profile})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (r *ProfileRepository) expand(profiles []models.Profile) ([]ProfileDetail, error) {
	if len(profiles) == 0 {
		return []ProfileDetail{}, nil
	}

	userIDs := make([]uint64, len(profiles))
	for i, p := range profiles {
		userIDs[i] = p.UserID
	}

	var users []models.User
	if err := r.DB().Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	usersByID := make(map[uint64]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	var userGames []models.UserGame
	if err := r.DB().Preload("User").Preload("Game").
		Where("user_id IN ?", userIDs).Find(&userGames).Error; err != nil {
		return nil, translate(err)
	}
	gamesByUser := make(map[uint64][]models.UserGame)
	for _, ug := range userGames {
		gamesByUser[ug.UserID] = append(gamesByUser[ug.UserID], ug)
	}

	type followerRow struct {
		FollowingID uint64
		Count       int64
	}
	var followerRows []followerRow
	if err := r.DB().Model(&models.Follow{}).
		Select("following_id, COUNT(*) AS count").
		Where("following_id IN ?", userIDs).
		Group("following_id").
		Scan(&followerRows).Error; err != nil {
		return nil, translate(err)
	}
	followersByUser := make(map[uint64]int64, len(followerRows))
	for _, row := range followerRows {
		followersByUser[row.FollowingID] = row.Count
	}

	type ratingRow struct {
		TargetID uint64
		Avg      float64
	}
	var ratingRows []ratingRow
	if err := r.DB().Model(&models.Review{}).
		Select("target_id, AVG(rating) AS avg").
		Where("target_id IN ?", userIDs).
		Group("target_id").
		Scan(&ratingRows).Error; err != nil {
		return nil, translate(err)
	}
	ratingByUser := make(map[uint64]float64, len(ratingRows))
	for _, row := range ratingRows {
		// Rounded to one decimal place; users without reviews stay at 0.
		ratingByUser[row.TargetID] = math.Round(row.Avg*10) / 10
	}

	details := make([]ProfileDetail, len(profiles))
	for i, p := range profiles {
		userGamesFor := gamesByUser[p.UserID]
		if userGamesFor == nil {
			userGamesFor = []models.UserGame{}
		}
		details[i] = ProfileDetail{
			Profile:        p,
			User:           usersByID[p.UserID],
			UserGames:      userGamesFor,
			FollowersCount: followersByUser[p.UserID],
			Rating:         ratingByUser[p.UserID],
		}
	}
	return details, nil
}
