package group

import (
	"errors"

	"scribe/internal/core/group"
)

var ErrNotFound = errors.New("group not found")

type GroupRepository interface {
	Create(group *group.Group) (*group.Group, error)
	FindByID(id string) (*group.Group, error)
	FindBySlug(slug string) (*group.Group, error)
	List() ([]*group.Group, error)
	// Delete detaches the group's posts (their group becomes empty) before
	// removing the group itself. Posts are never deleted with their group.
	Delete(id string) error
}

type GroupDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
