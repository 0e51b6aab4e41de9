package repo

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"game-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so the in-memory database and the pragma stick.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.SocialAuth{},
		&models.Game{},
		&models.UserGame{},
		&models.Achievement{},
		&models.ContentPost{},
		&models.UserGallery{},
		&models.PostLike{},
		&models.PostComment{},
		&models.SubscriptionPlan{},
		&models.UserSubscription{},
		&models.Purchase{},
		&models.PaymentTransaction{},
		&models.Follow{},
		&models.Review{},
		&models.Conversation{},
		&models.ConversationParticipant{},
		&models.Message{},
		&models.Notification{},
	))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@test.com",
		Password: "hash",
		IsActive: true,
	}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func createPost(t *testing.T, db *gorm.DB, authorID uint64, title string) *models.ContentPost {
	t.Helper()
	post := &models.ContentPost{
		AuthorID: authorID,
		Title:    title,
		Content:  "content of " + title,
	}
	require.NoError(t, NewPostRepository(db).Create(post))
	return post
}

func TestStore_GetNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.Get(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_PatchNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.Patch(9999, map[string]interface{}{"bio": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_DeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	err := repo.Delete(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_CreateAssignsKeyAndPatchUpdates(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := createUser(t, db, "alice")
	assert.NotZero(t, user.ID)

	updated, err := repo.Patch(user.ID, map[string]interface{}{"bio": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.Bio)
	assert.Equal(t, "alice", updated.Username)
}

func TestStore_EmptyPatchKeepsRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := createUser(t, db, "alice")
	updated, err := repo.Patch(user.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
}

func TestUsers_DuplicateUsernameFailsValidation(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	createUser(t, db, "alice")
	err := repo.Create(&models.User{Username: "alice", Email: "other@test.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUsers_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	posts := NewPostRepository(db)
	follows := NewFollowRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	require.NoError(t, profiles.Create(&models.Profile{UserID: alice.ID, Country: "DE"}))
	post := createPost(t, db, alice.ID, "first")
	require.NoError(t, follows.Create(&models.Follow{FollowerID: bob.ID, FollowingID: alice.ID}))

	require.NoError(t, users.Delete(alice.ID))

	_, err := profiles.Get(alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = posts.Get(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	remaining, err := follows.List()
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// The other account is untouched.
	_, err = users.Get(bob.ID)
	assert.NoError(t, err)
}

func TestFollows_DuplicatePairFailsValidation(t *testing.T) {
	db := newTestDB(t)
	follows := NewFollowRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, follows.Create(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))
	err := follows.Create(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID})
	assert.ErrorIs(t, err, ErrValidation)

	// The reverse direction is a different pair.
	assert.NoError(t, follows.Create(&models.Follow{FollowerID: bob.ID, FollowingID: alice.ID}))
}

func TestPosts_LikeAndCommentCounts(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	likes := NewPostLikeRepository(db)
	comments := NewPostCommentRepository(db)

	author := createUser(t, db, "author")
	fan1 := createUser(t, db, "fan1")
	fan2 := createUser(t, db, "fan2")
	post := createPost(t, db, author.ID, "counted")

	detail, err := posts.GetDetailed(post.ID)
	require.NoError(t, err)
	assert.Zero(t, detail.LikesCount)
	assert.Zero(t, detail.CommentsCount)

	like1 := &models.PostLike{PostID: post.ID, UserID: fan1.ID}
	require.NoError(t, likes.Create(like1))
	require.NoError(t, likes.Create(&models.PostLike{PostID: post.ID, UserID: fan2.ID}))
	require.NoError(t, comments.Create(&models.PostComment{PostID: post.ID, AuthorID: fan1.ID, Content: "nice"}))

	detail, err = posts.GetDetailed(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.LikesCount)
	assert.Equal(t, int64(1), detail.CommentsCount)

	// Removing a like is reflected on the next read.
	require.NoError(t, likes.Delete(like1.ID))
	detail, err = posts.GetDetailed(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.LikesCount)
}

func TestPostLikes_DuplicateFailsValidation(t *testing.T) {
	db := newTestDB(t)
	likes := NewPostLikeRepository(db)

	author := createUser(t, db, "author")
	fan := createUser(t, db, "fan")
	post := createPost(t, db, author.ID, "liked")

	require.NoError(t, likes.Create(&models.PostLike{PostID: post.ID, UserID: fan.ID}))
	err := likes.Create(&models.PostLike{PostID: post.ID, UserID: fan.ID})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPosts_ListDetailedByAuthor(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	createPost(t, db, alice.ID, "a1")
	createPost(t, db, alice.ID, "a2")
	createPost(t, db, bob.ID, "b1")

	all, err := posts.ListDetailed(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// Author comes embedded.
	assert.Equal(t, "alice", all[0].Post.Author.Username)

	aliceOnly, err := posts.ListDetailed(alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceOnly, 2)
	for _, d := range aliceOnly {
		assert.Equal(t, alice.ID, d.Post.AuthorID)
	}
}

func TestReviews_RatingBounds(t *testing.T) {
	db := newTestDB(t)
	reviews := NewReviewRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	err := reviews.Create(&models.Review{AuthorID: alice.ID, TargetID: bob.ID, Rating: 6})
	assert.ErrorIs(t, err, ErrValidation)
	err = reviews.Create(&models.Review{AuthorID: alice.ID, TargetID: bob.ID, Rating: 0})
	assert.ErrorIs(t, err, ErrValidation)

	// Both endpoints of the range are valid.
	assert.NoError(t, reviews.Create(&models.Review{AuthorID: alice.ID, TargetID: bob.ID, Rating: 1}))
	assert.NoError(t, reviews.Create(&models.Review{AuthorID: carol.ID, TargetID: bob.ID, Rating: 5}))
}

func TestReviews_PatchValidatesRating(t *testing.T) {
	db := newTestDB(t)
	reviews := NewReviewRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	review := &models.Review{AuthorID: alice.ID, TargetID: bob.ID, Rating: 3}
	require.NoError(t, reviews.Create(review))

	_, err := reviews.Patch(review.ID, map[string]interface{}{"rating": float64(6)})
	assert.ErrorIs(t, err, ErrValidation)

	// JSON numbers decode as float64 and still pass the bounds check.
	updated, err := reviews.Patch(review.ID, map[string]interface{}{"rating": float64(4)})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
}

func TestReviews_OneReviewPerPair(t *testing.T) {
	db := newTestDB(t)
	reviews := NewReviewRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	require.NoError(t, reviews.Create(&models.Review{AuthorID: alice.ID, TargetID: bob.ID, Rating: 4}))

	err := reviews.Create(&models.Review{AuthorID: alice.ID, TargetID: bob.ID, Rating: 2})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProfiles_RatingAggregate(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileRepository(db)
	reviews := NewReviewRepository(db)

	target := createUser(t, db, "target")
	require.NoError(t, profiles.Create(&models.Profile{UserID: target.ID}))

	// No reviews yet: rating stays at zero.
	detail, err := profiles.GetDetailed(target.ID)
	require.NoError(t, err)
	assert.Zero(t, detail.Rating)

	for i, rating := range []int{4, 5, 3} {
		author := createUser(t, db, fmt.Sprintf("reviewer%d", i))
		require.NoError(t, reviews.Create(&models.Review{AuthorID: author.ID, TargetID: target.ID, Rating: rating}))
	}

	detail, err = profiles.GetDetailed(target.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, detail.Rating)
}

func TestProfiles_FollowersCount(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileRepository(db)
	follows := NewFollowRepository(db)

	star := createUser(t, db, "star")
	require.NoError(t, profiles.Create(&models.Profile{UserID: star.ID}))
	for i := 0; i < 3; i++ {
		fan := createUser(t, db, fmt.Sprintf("fan%d", i))
		require.NoError(t, follows.Create(&models.Follow{FollowerID: fan.ID, FollowingID: star.ID}))
	}
	// Following someone does not count as a follower.
	other := createUser(t, db, "other")
	require.NoError(t, follows.Create(&models.Follow{FollowerID: star.ID, FollowingID: other.ID}))

	detail, err := profiles.GetDetailed(star.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), detail.FollowersCount)
}

func TestProfiles_OnePerUser(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileRepository(db)

	alice := createUser(t, db, "alice")
	require.NoError(t, profiles.Create(&models.Profile{UserID: alice.ID, Country: "DE"}))

	err := profiles.Create(&models.Profile{UserID: alice.ID, Country: "FR"})
	assert.ErrorIs(t, err, ErrValidation)
}

func setupSearchFixtures(t *testing.T, db *gorm.DB) (dota, cs models.Game) {
	t.Helper()
	profiles := NewProfileRepository(db)
	games := NewGameRepository(db)
	userGames := NewUserGameRepository(db)

	dota = models.Game{Name: "Dota 2"}
	cs = models.Game{Name: "CS2"}
	require.NoError(t, games.Create(&dota))
	require.NoError(t, games.Create(&cs))

	for username, game := range map[string]uint64{
		"alice_dota": dota.ID,
		"bob_cs":     cs.ID,
		"carol":      dota.ID,
	} {
		user := createUser(t, db, username)
		require.NoError(t, profiles.Create(&models.Profile{UserID: user.ID}))
		require.NoError(t, userGames.Create(&models.UserGame{UserID: user.ID, GameID: game}))
	}
	return dota, cs
}

func TestProfiles_SearchByUsername(t *testing.T) {
	db := newTestDB(t)
	setupSearchFixtures(t, db)

	details, err := NewProfileRepository(db).ListDetailed(ProfileFilter{Search: "ALICE"})
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "alice_dota", details[0].User.Username)
}

func TestProfiles_SearchByGameName(t *testing.T) {
	db := newTestDB(t)
	setupSearchFixtures(t, db)

	// Matches players of the game even when the username does not contain
	// the needle.
	details, err := NewProfileRepository(db).ListDetailed(ProfileFilter{Search: "dota"})
	require.NoError(t, err)
	usernames := make([]string, len(details))
	for i, d := range details {
		usernames[i] = d.User.Username
	}
	assert.ElementsMatch(t, []string{"alice_dota", "carol"}, usernames)
}

func TestProfiles_FilterByGame(t *testing.T) {
	db := newTestDB(t)
	_, cs := setupSearchFixtures(t, db)

	details, err := NewProfileRepository(db).ListDetailed(ProfileFilter{GameID: cs.ID})
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "bob_cs", details[0].User.Username)
}

func TestProfiles_SortFallback(t *testing.T) {
	db := newTestDB(t)
	setupSearchFixtures(t, db)
	profiles := NewProfileRepository(db)

	ordering := func(details []ProfileDetail) []string {
		out := make([]string, len(details))
		for i, d := range details {
			out[i] = d.User.Username
		}
		return out
	}

	base, err := profiles.ListDetailed(ProfileFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"carol", "bob_cs", "alice_dota"}, ordering(base))

	// rating and followers are accepted but produce the default ordering.
	for _, sortBy := range []string{SortRating, SortFollowers} {
		details, err := profiles.ListDetailed(ProfileFilter{SortBy: sortBy})
		require.NoError(t, err)
		assert.Equal(t, ordering(base), ordering(details), "sort_by=%s", sortBy)
	}
}

func TestProfiles_UserGamesExpanded(t *testing.T) {
	db := newTestDB(t)
	dota, _ := setupSearchFixtures(t, db)

	details, err := NewProfileRepository(db).ListDetailed(ProfileFilter{Search: "alice"})
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Len(t, details[0].UserGames, 1)
	assert.Equal(t, dota.ID, details[0].UserGames[0].GameID)
	assert.Equal(t, "Dota 2", details[0].UserGames[0].Game.Name)
}

func TestUserGames_DuplicatePairFailsValidation(t *testing.T) {
	db := newTestDB(t)
	games := NewGameRepository(db)
	userGames := NewUserGameRepository(db)

	alice := createUser(t, db, "alice")
	game := models.Game{Name: "Dota 2"}
	require.NoError(t, games.Create(&game))

	require.NoError(t, userGames.Create(&models.UserGame{UserID: alice.ID, GameID: game.ID}))
	err := userGames.Create(&models.UserGame{UserID: alice.ID, GameID: game.ID})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlans_ListByAuthor(t *testing.T) {
	db := newTestDB(t)
	plans := NewPlanRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	require.NoError(t, plans.Create(&models.SubscriptionPlan{AuthorID: alice.ID, Title: "Basic", PricePerMonth: 5}))
	require.NoError(t, plans.Create(&models.SubscriptionPlan{AuthorID: bob.ID, Title: "Pro", PricePerMonth: 10}))

	all, err := plans.ListByAuthor(0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "alice", all[0].Author.Username)

	aliceOnly, err := plans.ListByAuthor(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceOnly, 1)
	assert.Equal(t, "Basic", aliceOnly[0].Title)
}

func TestPurchases_DuplicateContentFailsValidation(t *testing.T) {
	db := newTestDB(t)
	purchases := NewPurchaseRepository(db)

	alice := createUser(t, db, "alice")
	buy := &models.Purchase{UserID: alice.ID, ContentType: models.PurchasePost, ContentID: 1, PurchasePrice: 10}
	require.NoError(t, purchases.Create(buy))

	err := purchases.Create(&models.Purchase{UserID: alice.ID, ContentType: models.PurchasePost, ContentID: 1, PurchasePrice: 10})
	assert.ErrorIs(t, err, ErrValidation)

	// Same id under a different content type is a distinct purchase.
	assert.NoError(t, purchases.Create(&models.Purchase{
		UserID: alice.ID, ContentType: models.PurchaseGalleryImage, ContentID: 1, PurchasePrice: 5,
	}))
}

func TestConversations_ParticipantUniqueness(t *testing.T) {
	db := newTestDB(t)
	conversations := NewConversationRepository(db)
	participants := NewParticipantRepository(db)

	alice := createUser(t, db, "alice")
	conv := &models.Conversation{CreatedBy: alice.ID, Title: "squad"}
	require.NoError(t, conversations.Create(conv))

	require.NoError(t, participants.Create(&models.ConversationParticipant{ConversationID: conv.ID, UserID: alice.ID}))
	err := participants.Create(&models.ConversationParticipant{ConversationID: conv.ID, UserID: alice.ID})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStore_PatchDropsUnknownColumns(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)

	alice := createUser(t, db, "alice")

	updated, err := users.Patch(alice.ID, map[string]interface{}{
		"no_such_column": 1,
		"bio":            "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.Bio)
	assert.Equal(t, "alice", updated.Username)
}

func TestStore_PatchAcceptsFullRepresentation(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)

	alice := createUser(t, db, "alice")
	post := createPost(t, db, alice.ID, "Original")

	// The read representation carries computed counts and the embedded
	// author; writing it back with one field changed must succeed.
	updated, err := posts.Patch(post.ID, map[string]interface{}{
		"id":             999,
		"author_id":      alice.ID,
		"title":          "Renamed",
		"content":        post.Content,
		"access_type":    "free",
		"price":          0,
		"likes_count":    5,
		"comments_count": 2,
		"author":         map[string]interface{}{"id": alice.ID, "username": "alice"},
	})
	require.NoError(t, err)
	assert.Equal(t, post.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestStore_PatchIgnoresPrimaryKey(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)

	alice := createUser(t, db, "alice")

	updated, err := users.Patch(alice.ID, map[string]interface{}{"id": 999, "bio": "kept"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, updated.ID)
	assert.Equal(t, "kept", updated.Bio)
}

func TestStore_CreateIgnoresClientTimestamps(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)

	planted := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	alice := &models.User{
		Username:  "alice",
		Email:     "alice@test.com",
		Password:  "hash",
		CreatedAt: planted,
		UpdatedAt: planted,
	}
	require.NoError(t, users.Create(alice))

	assert.WithinDuration(t, time.Now(), alice.CreatedAt, time.Minute)
	assert.WithinDuration(t, time.Now(), alice.UpdatedAt, time.Minute)
}
