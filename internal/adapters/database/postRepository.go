package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scribe/internal/config"
	"scribe/internal/core/post"
	postPort "scribe/internal/ports/post"
)

type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(p *post.Post) (*post.Post, error) {
	if err := config.DB.Omit(clause.Associations).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Update writes the post's own columns only; loaded associations must not
// leak back into the row (a cleared group has to stay cleared).
func (repo *PostRepositoryDatabase) Update(p *post.Post) error {
	return config.DB.Omit(clause.Associations).Save(p).Error
}

func (repo *PostRepositoryDatabase) FindByID(id string) (*post.Post, error) {
	var p post.Post
	err := config.DB.Preload("Author").Preload("Group").Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, postPort.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) FindPage(limit, offset int) ([]*post.Post, error) {
	return repo.findPage(config.DB, limit, offset)
}

func (repo *PostRepositoryDatabase) FindPageByGroup(groupID string, limit, offset int) ([]*post.Post, error) {
	return repo.findPage(config.DB.Where("group_id = ?", groupID), limit, offset)
}

func (repo *PostRepositoryDatabase) FindPageByAuthor(authorID string, limit, offset int) ([]*post.Post, error) {
	return repo.findPage(config.DB.Where("author_id = ?", authorID), limit, offset)
}

// findPage applies the one ordering every listing uses: newest first.
func (repo *PostRepositoryDatabase) findPage(db *gorm.DB, limit, offset int) ([]*post.Post, error) {
	var posts []*post.Post
	err := db.Preload("Author").Preload("Group").
		Order("pub_date DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) CountAll() (int64, error) {
	var n int64
	err := config.DB.Model(&post.Post{}).Count(&n).Error
	return n, err
}

func (repo *PostRepositoryDatabase) CountByGroup(groupID string) (int64, error) {
	var n int64
	err := config.DB.Model(&post.Post{}).Where("group_id = ?", groupID).Count(&n).Error
	return n, err
}

func (repo *PostRepositoryDatabase) CountByAuthor(authorID string) (int64, error) {
	var n int64
	err := config.DB.Model(&post.Post{}).Where("author_id = ?", authorID).Count(&n).Error
	return n, err
}
