package repo

import (
	"game-platform/internal/models"

	"gorm.io/gorm"
)

// PostDetail is a post with its author expanded and the two read-time
// counters attached. The counts are never stored.
type PostDetail struct {
	Post          models.ContentPost
	LikesCount    int64
	CommentsCount int64
}

type PostRepository struct {
	*Store[models.ContentPost, *models.ContentPost]
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{Store: NewStore[models.ContentPost, *models.ContentPost](db)}
}

// ListDetailed returns posts in store order, optionally restricted to one
// author. Like and comment counts are gathered with one grouped query each.
func (r *PostRepository) ListDetailed(authorID uint64) ([]PostDetail, error) {
	q := r.DB().Preload("Author")
	if authorID != 0 {
		q = q.Where("author_id = ?", authorID)
	}

	var posts []models.ContentPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, translate(err)
	}

	return r.expand(posts)
}

func (r *PostRepository) GetDetailed(id uint64) (*PostDetail, error) {
	var post models.ContentPost
	if err := r.DB().Preload("Author").First(&post, id).Error; err != nil {
		return nil, translate(err)
	}

	details, err := r.expand([]models.ContentPost{post})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (r *PostRepository) expand(posts []models.ContentPost) ([]PostDetail, error) {
	if len(posts) == 0 {
		return []PostDetail{}, nil
	}

	postIDs := make([]uint64, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countRow struct {
		PostID uint64
		Count  int64
	}

	var likeRows []countRow
	if err := r.DB().Model(&models.PostLike{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&likeRows).Error; err != nil {
		return nil, translate(err)
	}
	likesByPost := make(map[uint64]int64, len(likeRows))
	for _, row := range likeRows {
		likesByPost[row.PostID] = row.Count
	}

	var commentRows []countRow
	if err := r.DB().Model(&models.PostComment{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&commentRows).Error; err != nil {
		return nil, translate(err)
	}
	commentsByPost := make(map[uint64]int64, len(commentRows))
	for _, row := range commentRows {
		commentsByPost[row.PostID] = row.Count
	}

	details := make([]PostDetail, len(posts))
	for i, p := range posts {
		details[i] = PostDetail{
			Post:          p,
			LikesCount:    likesByPost[p.ID],
			CommentsCount: commentsByPost[p.ID],
		}
	}
	return details, nil
}

type GalleryRepository struct {
	*Store[models.UserGallery, *models.UserGallery]
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{Store: NewStore[models.UserGallery, *models.UserGallery](db)}
}

type PostLikeRepository struct {
	*Store[models.PostLike, *models.PostLike]
}

func NewPostLikeRepository(db *gorm.DB) *PostLikeRepository {
	return &PostLikeRepository{Store: NewStore[models.PostLike, *models.PostLike](db)}
}

type PostCommentRepository struct {
	*Store[models.PostComment, *models.PostComment]
}

func NewPostCommentRepository(db *gorm.DB) *PostCommentRepository {
	return &PostCommentRepository{Store: NewStore[models.PostComment, *models.PostComment](db)}
}
