package main

import (
	"fmt"
	"time"

	"game-platform/internal/models"
	"game-platform/pkg/config"
	"game-platform/pkg/database"
	"game-platform/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	games := []models.Game{
		{Name: "Dota 2", Description: "A MOBA by Valve"},
		{Name: "CS2", Description: "Tactical shooter"},
		{Name: "Valorant", Description: "Character-based tactical shooter"},
	}
	for i := range games {
		var existing models.Game
		if err := db.Where("name = ?", games[i].Name).First(&existing).Error; err == nil {
			games[i] = existing
			continue
		}
		if err := db.Create(&games[i]).Error; err != nil {
			return fmt.Errorf("failed to create game %s: %w", games[i].Name, err)
		}
		log.Info("Created game: %s", games[i].Name)
	}

	testUsers := []struct {
		email    string
		username string
		password string
		country  string
	}{
		{"alice@test.com", "alice_gg", "password123", "DE"},
		{"bob@test.com", "bob_gg", "password123", "US"},
		{"charlie@test.com", "charlie_gg", "password123", "FR"},
		{"diana@test.com", "diana_gg", "password123", "BR"},
		{"eve@test.com", "eve_gg", "password123", "JP"},
	}

	userIDs := make([]uint64, 0, len(testUsers))

	for i, userData := range testUsers {
		var existingUser models.User
		result := db.Where("email = ? OR username = ?", userData.email, userData.username).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", userData.username)
			userIDs = append(userIDs, existingUser.ID)
			continue
		}

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &models.User{
			Email:    userData.email,
			Username: userData.username,
			Password: string(hashedPassword),
			IsActive: true,
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}
		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)

		profile := &models.Profile{
			UserID:            user.ID,
			Country:           userData.country,
			PreferredLanguage: "en",
		}
		if err := db.Create(profile).Error; err != nil {
			log.Error("Failed to create profile for %s: %v", user.Username, err)
		}

		game := games[i%len(games)]
		userGame := &models.UserGame{
			UserID:        user.ID,
			GameID:        game.ID,
			PlaytimeHours: 100 * (i + 1),
			IsPrimary:     true,
		}
		if err := db.Create(userGame).Error; err != nil {
			log.Error("Failed to link %s to %s: %v", user.Username, game.Name, err)
		}

		postsCount := 2 + i%2
		for j := 0; j < postsCount; j++ {
			now := time.Now()
			post := &models.ContentPost{
				AuthorID:    user.ID,
				Title:       fmt.Sprintf("Post #%d by %s", j+1, user.Username),
				Content:     fmt.Sprintf("Thoughts on %s, part %d.", game.Name, j+1),
				AccessType:  models.AccessFree,
				IsPublished: true,
				PublishedAt: &now,
			}
			if err := db.Create(post).Error; err != nil {
				log.Error("Failed to create post for %s: %v", user.Username, err)
			}
		}
	}

	// Everyone follows everyone after them in the list.
	for i := 0; i < len(userIDs); i++ {
		for j := i + 1; j < len(userIDs); j++ {
			var existing models.Follow
			result := db.Where("follower_id = ? AND following_id = ?", userIDs[i], userIDs[j]).First(&existing)
			if result.Error == nil {
				continue
			}
			follow := &models.Follow{FollowerID: userIDs[i], FollowingID: userIDs[j]}
			if err := db.Create(follow).Error; err != nil {
				log.Error("Failed to create follow: %v", err)
			}
		}
	}
	log.Info("Created test follows")

	// A few reviews so profile ratings are non-zero.
	for i := 1; i < len(userIDs); i++ {
		var existing models.Review
		result := db.Where("author_id = ? AND target_id = ?", userIDs[i], userIDs[0]).First(&existing)
		if result.Error == nil {
			continue
		}
		review := &models.Review{
			AuthorID: userIDs[i],
			TargetID: userIDs[0],
			Rating:   3 + i%3,
			Comment:  "Solid teammate",
		}
		if err := db.Create(review).Error; err != nil {
			log.Error("Failed to create review: %v", err)
		}
	}
	log.Info("Created test reviews")

	return nil
}
