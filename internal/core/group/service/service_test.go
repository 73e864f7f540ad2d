package groupapp

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbadapter "scribe/internal/adapters/database"
	"scribe/internal/config"
	groupEntity "scribe/internal/core/group"
	postEntity "scribe/internal/core/post"
	userEntity "scribe/internal/core/user"
	groupPort "scribe/internal/ports/group"
)

func newService(t *testing.T) *GroupService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userEntity.User{}, &groupEntity.Group{}, &postEntity.Post{}))
	config.DB = db
	return NewGroupService(dbadapter.NewGroupRepositoryDatabase())
}

func TestCreateGroup_RequiresTitleAndSlug(t *testing.T) {
	svc := newService(t)

	_, err := svc.CreateGroup(context.Background(), "", "slug", "")
	assert.Error(t, err)
	_, err = svc.CreateGroup(context.Background(), "Title", "  ", "")
	assert.Error(t, err)

	g, err := svc.CreateGroup(context.Background(), "Travel", "travel", "On the road")
	require.NoError(t, err)
	assert.Equal(t, "travel", g.Slug)
}

func TestListGroups_OrderedByTitle(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.CreateGroup(ctx, "Zoology", "zoology", "")
	require.NoError(t, err)
	_, err = svc.CreateGroup(ctx, "Art", "art", "")
	require.NoError(t, err)

	groups, err := svc.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Art", groups[0].Title)
	assert.Equal(t, "Zoology", groups[1].Title)
}

func TestDeleteGroup_DetachesPostsInsteadOfDeletingThem(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	g, err := svc.CreateGroup(ctx, "Travel", "travel", "")
	require.NoError(t, err)

	author := &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: "leo", Password: "x"}
	require.NoError(t, config.DB.Create(author).Error)

	gid := uuid.FromStringOrNil(g.ID)
	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     "still here",
		PubDate:  time.Now(),
		AuthorID: author.ID,
		GroupID:  &gid,
	}
	require.NoError(t, config.DB.Create(p).Error)

	require.NoError(t, svc.DeleteGroup(ctx, g.ID))

	var stored postEntity.Post
	require.NoError(t, config.DB.First(&stored, "id = ?", p.ID).Error)
	assert.Nil(t, stored.GroupID)
	assert.Equal(t, "still here", stored.Text)

	var n int64
	require.NoError(t, config.DB.Model(&groupEntity.Group{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDeleteGroup_UnknownID(t *testing.T) {
	svc := newService(t)
	err := svc.DeleteGroup(context.Background(), uuid.Must(uuid.NewV4()).String())
	assert.ErrorIs(t, err, groupPort.ErrNotFound)
}
