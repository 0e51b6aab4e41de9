package models

import "time"

// AccessType is the visibility/payment tier of a content item.
type AccessType string

const (
	AccessFree         AccessType = "free"
	AccessSubscription AccessType = "subscription"
	AccessPayPerView   AccessType = "pay_per_view"
)

// ContentPost is a publishable content item. Price is only meaningful when
// the access type is not free; the store does not enforce that.
type ContentPost struct {
	ID              uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID        uint64     `gorm:"not null;index" json:"author_id"`
	Title           string     `gorm:"not null" json:"title"`
	Content         string     `gorm:"not null" json:"content"`
	PreviewImageURL string     `json:"preview_image_url"`
	AccessType      AccessType `gorm:"type:varchar(20);default:'free'" json:"access_type"`
	Price           float64    `gorm:"type:decimal(10,2);default:0" json:"price"`
	IsPublished     bool       `gorm:"default:false" json:"is_published"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	PublishedAt     *time.Time `json:"published_at"`

	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *ContentPost) PK() uint64      { return p.ID }
func (p *ContentPost) SetPK(id uint64) { p.ID = id }

type UserGallery struct {
	ID         uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64     `gorm:"not null;index" json:"user_id"`
	ImageURL   string     `gorm:"not null" json:"image_url"`
	Caption    string     `json:"caption"`
	AccessType AccessType `gorm:"type:varchar(20);default:'free'" json:"access_type"`
	Price      float64    `gorm:"type:decimal(10,2);default:0" json:"price"`
	UploadedAt time.Time  `gorm:"autoCreateTime" json:"uploaded_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (g *UserGallery) PK() uint64      { return g.ID }
func (g *UserGallery) SetPK(id uint64) { g.ID = id }

// PostLike is one user's like on a post. One row per (post, user) pair.
type PostLike struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_post_like" json:"post_id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_post_like" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Post ContentPost `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	User User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (l *PostLike) PK() uint64      { return l.ID }
func (l *PostLike) SetPK(id uint64) { l.ID = id }

type PostComment struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID          uint64    `gorm:"not null;index" json:"post_id"`
	AuthorID        uint64    `gorm:"not null;index" json:"author_id"`
	ParentCommentID *uint64   `json:"parent_comment_id"`
	Content         string    `gorm:"not null" json:"content"`
	CreatedAt       time.Time `json:"created_at"`

	Post   ContentPost  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Author User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Parent *PostComment `gorm:"foreignKey:ParentCommentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *PostComment) PK() uint64      { return c.ID }
func (c *PostComment) SetPK(id uint64) { c.ID = id }
