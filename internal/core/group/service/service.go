package groupapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"

	groupEntity "scribe/internal/core/group"
	groupPort "scribe/internal/ports/group"
)

// GroupService covers the admin-side group operations. Groups are not
// managed through the web UI; this backs the seed command and tests.
type GroupService struct {
	GroupRepository groupPort.GroupRepository
}

func NewGroupService(repo groupPort.GroupRepository) *GroupService {
	return &GroupService{GroupRepository: repo}
}

func (s *GroupService) CreateGroup(ctx context.Context, title, slug, description string) (*groupPort.GroupDTO, error) {
	title = strings.TrimSpace(title)
	slug = strings.TrimSpace(slug)
	if title == "" || slug == "" {
		return nil, errors.New("title and slug are required")
	}

	g := &groupEntity.Group{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       title,
		Slug:        slug,
		Description: description,
	}

	created, err := s.GroupRepository.Create(g)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return toDTO(created), nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	dtos := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, toDTO(g))
	}
	return dtos, nil
}

// DeleteGroup removes the group; its posts survive with an empty group.
func (s *GroupService) DeleteGroup(ctx context.Context, id string) error {
	return s.GroupRepository.Delete(id)
}

func toDTO(g *groupEntity.Group) *groupPort.GroupDTO {
	return &groupPort.GroupDTO{
		ID:          g.ID.String(),
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}
