package postapp

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	"github.com/gofrs/uuid"
	"github.com/microcosm-cc/bluemonday"

	postEntity "scribe/internal/core/post"
	"scribe/internal/pagination"
	groupPort "scribe/internal/ports/group"
	"scribe/internal/ports/pagecache"
	postPort "scribe/internal/ports/post"
	userPort "scribe/internal/ports/user"
)

// ErrInvalidForm signals that the submitted form failed validation; the
// field errors are on the form itself.
var ErrInvalidForm = errors.New("invalid post form")

// ErrNotOwner signals an edit attempt by somebody other than the author.
var ErrNotOwner = errors.New("requester is not the post author")

// IndexCachePattern matches every cached index page variant.
const IndexCachePattern = "page:/*"

type PostService struct {
	PostRepository  postPort.PostRepository
	GroupRepository groupPort.GroupRepository
	UserRepository  userPort.UserRepository
	PageCache       pagecache.PageCache // nil disables cache invalidation
	sanitizer       *bluemonday.Policy
}

func NewPostService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
	cache pagecache.PageCache,
) *PostService {
	return &PostService{
		PostRepository:  postRepo,
		GroupRepository: groupRepo,
		UserRepository:  userRepo,
		PageCache:       cache,
		sanitizer:       bluemonday.StrictPolicy(),
	}
}

// cleanText strips markup from a submission, leaving plain text. The
// sanitizer entity-encodes what remains, so decode it back: escaping is the
// template layer's job, and stored text must round-trip through the edit
// form unchanged.
func (s *PostService) cleanText(raw string) string {
	return html.UnescapeString(s.sanitizer.Sanitize(raw))
}

// ListPosts returns one page of the global listing, newest first.
func (s *PostService) ListPosts(ctx context.Context, page string) (*postPort.PageDTO, error) {
	total, err := s.PostRepository.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}
	pg := pagination.New(total, page, pagination.PageSize)
	posts, err := s.PostRepository.FindPage(pg.Limit(), pg.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	return s.toPage(posts, pg), nil
}

// ListGroupPosts returns the group plus one page of its posts. Unknown slugs
// surface groupPort.ErrNotFound.
func (s *PostService) ListGroupPosts(ctx context.Context, slug, page string) (*groupPort.GroupDTO, *postPort.PageDTO, error) {
	g, err := s.GroupRepository.FindBySlug(slug)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.PostRepository.CountByGroup(g.ID.String())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count group posts: %w", err)
	}
	pg := pagination.New(total, page, pagination.PageSize)
	posts, err := s.PostRepository.FindPageByGroup(g.ID.String(), pg.Limit(), pg.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch group posts: %w", err)
	}

	dto := &groupPort.GroupDTO{
		ID:          g.ID.String(),
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
	return dto, s.toPage(posts, pg), nil
}

// ListAuthorPosts returns the author, their total post count, and one page
// of their posts. Unknown usernames surface userPort.ErrNotFound.
func (s *PostService) ListAuthorPosts(ctx context.Context, username, page string) (*userPort.UserDTO, int64, *postPort.PageDTO, error) {
	u, err := s.UserRepository.FindByUsername(username)
	if err != nil {
		return nil, 0, nil, err
	}

	total, err := s.PostRepository.CountByAuthor(u.ID.String())
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to count author posts: %w", err)
	}
	pg := pagination.New(total, page, pagination.PageSize)
	posts, err := s.PostRepository.FindPageByAuthor(u.ID.String(), pg.Limit(), pg.Offset())
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to fetch author posts: %w", err)
	}

	author := &userPort.UserDTO{ID: u.ID.String(), Username: u.Username}
	return author, total, s.toPage(posts, pg), nil
}

// GetPost returns one post plus its author's total post count.
func (s *PostService) GetPost(ctx context.Context, id string) (*postPort.PostDTO, int64, error) {
	p, err := s.PostRepository.FindByID(id)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.PostRepository.CountByAuthor(p.AuthorID.String())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count author posts: %w", err)
	}
	return s.toDTO(p), count, nil
}

// CreatePost validates the submission and persists a new post owned by the
// requester. The publication date is stamped here and never changes.
func (s *PostService) CreatePost(ctx context.Context, form *postEntity.Form, authorID string) (*postPort.PostDTO, error) {
	// Markup is stripped before validation: a submission that is nothing but
	// tags must fail the non-empty check, not persist as an empty post.
	form.Text = s.cleanText(form.Text)
	if !s.validateForm(form) {
		return nil, ErrInvalidForm
	}

	uid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}

	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     form.Text,
		PubDate:  time.Now(),
		AuthorID: uid,
		GroupID:  form.Group(),
		Image:    form.Image,
	}

	created, err := s.PostRepository.Create(p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.invalidateIndex(ctx)

	loaded, err := s.PostRepository.FindByID(created.ID.String())
	if err != nil {
		return nil, err
	}
	return s.toDTO(loaded), nil
}

// EditPost applies a validated submission to an existing post. Only the
// author may edit; the author and publication date are never reassigned.
func (s *PostService) EditPost(ctx context.Context, id string, form *postEntity.Form, requesterID string) (*postPort.PostDTO, error) {
	existing, err := s.PostRepository.FindByID(id)
	if err != nil {
		return nil, err
	}

	if existing.AuthorID.String() != requesterID {
		return nil, ErrNotOwner
	}

	form.Text = s.cleanText(form.Text)
	if !s.validateForm(form) {
		return nil, ErrInvalidForm
	}

	existing.Text = form.Text
	existing.GroupID = form.Group()
	if form.Image != "" {
		existing.Image = form.Image
	}

	if err := s.PostRepository.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.invalidateIndex(ctx)

	loaded, err := s.PostRepository.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(loaded), nil
}

// validateForm runs the field checks plus the referential check that the
// submitted group actually exists.
func (s *PostService) validateForm(form *postEntity.Form) bool {
	ok := form.Validate()
	if gid := form.Group(); gid != nil {
		if _, err := s.GroupRepository.FindByID(gid.String()); err != nil {
			form.Errors["group"] = "unknown group"
			ok = false
		}
	}
	return ok
}

func (s *PostService) invalidateIndex(ctx context.Context) {
	if s.PageCache == nil {
		return
	}
	// Best effort: a stale index page expires on its own TTL anyway.
	_ = s.PageCache.Invalidate(ctx, IndexCachePattern)
}

func (s *PostService) toPage(posts []*postEntity.Post, pg pagination.Page) *postPort.PageDTO {
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, s.toDTO(p))
	}
	return &postPort.PageDTO{
		Posts:    dtos,
		Number:   pg.Number,
		NumPages: pg.NumPages,
		Total:    pg.Total,
		HasNext:  pg.HasNext(),
		HasPrev:  pg.HasPrev(),
	}
}

func (s *PostService) toDTO(p *postEntity.Post) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:      p.ID.String(),
		Text:    p.Text,
		Image:   p.Image,
		PubDate: p.PubDate,
	}
	if p.Author.Username != "" {
		dto.Author = &userPort.UserDTO{ID: p.Author.ID.String(), Username: p.Author.Username}
	}
	if p.Group != nil {
		dto.Group = &groupPort.GroupDTO{
			ID:          p.Group.ID.String(),
			Title:       p.Group.Title,
			Slug:        p.Group.Slug,
			Description: p.Group.Description,
		}
	}
	return dto
}
