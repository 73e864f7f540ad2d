package database

import (
	"errors"

	"gorm.io/gorm"

	"scribe/internal/config"
	"scribe/internal/core/group"
	"scribe/internal/core/post"
	groupPort "scribe/internal/ports/group"
)

type GroupRepositoryDatabase struct{}

func NewGroupRepositoryDatabase() *GroupRepositoryDatabase {
	return &GroupRepositoryDatabase{}
}

func (repo *GroupRepositoryDatabase) Create(g *group.Group) (*group.Group, error) {
	if err := config.DB.Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (repo *GroupRepositoryDatabase) FindByID(id string) (*group.Group, error) {
	var g group.Group
	if err := config.DB.Where("id = ?", id).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupPort.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) FindBySlug(slug string) (*group.Group, error) {
	var g group.Group
	if err := config.DB.Where("slug = ?", slug).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupPort.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) List() ([]*group.Group, error) {
	var groups []*group.Group
	if err := config.DB.Order("title").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Delete detaches the group's posts inside the same transaction, so a post
// never ends up pointing at a group that no longer exists.
func (repo *GroupRepositoryDatabase) Delete(id string) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&post.Post{}).Where("group_id = ?", id).Update("group_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&group.Group{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return groupPort.ErrNotFound
		}
		return nil
	})
}
