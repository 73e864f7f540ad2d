package post

import (
	"errors"
	"time"

	"scribe/internal/core/post"
	groupPort "scribe/internal/ports/group"
	userPort "scribe/internal/ports/user"
)

var ErrNotFound = errors.New("post not found")

// PostRepository reads and writes posts. Every listing method returns posts
// newest first (descending publication date).
type PostRepository interface {
	Create(post *post.Post) (*post.Post, error)
	Update(post *post.Post) error
	FindByID(id string) (*post.Post, error)
	FindPage(limit, offset int) ([]*post.Post, error)
	FindPageByGroup(groupID string, limit, offset int) ([]*post.Post, error)
	FindPageByAuthor(authorID string, limit, offset int) ([]*post.Post, error)
	CountAll() (int64, error)
	CountByGroup(groupID string) (int64, error)
	CountByAuthor(authorID string) (int64, error)
}

type PostDTO struct {
	ID      string              `json:"id"`
	Text    string              `json:"text"`
	Image   string              `json:"image,omitempty"`
	PubDate time.Time           `json:"pub_date"`
	Author  *userPort.UserDTO   `json:"author,omitempty"`
	Group   *groupPort.GroupDTO `json:"group,omitempty"`
}

// PageDTO is one fixed-size slice of a listing plus the metadata templates
// need to draw pagination controls.
type PageDTO struct {
	Posts    []*PostDTO `json:"posts"`
	Number   int        `json:"number"`
	NumPages int        `json:"num_pages"`
	Total    int64      `json:"total"`
	HasNext  bool       `json:"has_next"`
	HasPrev  bool       `json:"has_prev"`
}
