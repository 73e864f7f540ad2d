package group

import (
	"time"

	"github.com/gofrs/uuid"
)

// Group is a named category a post may belong to. Groups are created by an
// administrator, not through the web UI, and outlive the posts that
// reference them.
type Group struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title       string    `gorm:"size:200;not null"`
	Slug        string    `gorm:"uniqueIndex;size:200;not null"` // URL key, immutable once published
	Description string    `gorm:"size:200"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
