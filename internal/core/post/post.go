package post

import (
	"time"

	"github.com/gofrs/uuid"

	"scribe/internal/core/group"
	"scribe/internal/core/user"
)

type Post struct {
	ID       uuid.UUID `gorm:"primary_key;type:char(36)"`
	Text     string    `gorm:"type:text;not null"`
	PubDate  time.Time `gorm:"autoCreateTime;index:idx_posts_pub_date,sort:desc"`
	AuthorID uuid.UUID `gorm:"type:char(36);not null;index"`
	Author   user.User `gorm:"foreignkey:AuthorID;constraint:OnDelete:CASCADE"`
	// GroupID is nullable: removing a group detaches its posts instead of
	// deleting them.
	GroupID *uuid.UUID   `gorm:"type:char(36);index"`
	Group   *group.Group `gorm:"foreignkey:GroupID;constraint:OnDelete:SET NULL"`
	Image   string       `gorm:"size:255"` // relative path under the media root, e.g. posts/<id>.jpg
}
