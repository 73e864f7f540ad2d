package userapp

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbadapter "scribe/internal/adapters/database"
	"scribe/internal/config"
	userEntity "scribe/internal/core/user"
)

func newService(t *testing.T) *UserService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userEntity.User{}))
	config.DB = db
	return NewUserService(dbadapter.NewUserRepositoryDatabase(), []byte("test-secret"))
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	svc := newService(t)

	dto, err := svc.RegisterUser(context.Background(), "leo", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "leo", dto.Username)

	var stored userEntity.User
	require.NoError(t, config.DB.First(&stored, "username = ?", "leo").Error)
	assert.NotEqual(t, "hunter2", stored.Password)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "leo", "hunter2")
	require.NoError(t, err)
	_, err = svc.RegisterUser(ctx, "leo", "other")
	assert.Error(t, err)
}

func TestLoginUser_IssuesParsableToken(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	dto, err := svc.RegisterUser(ctx, "leo", "hunter2")
	require.NoError(t, err)

	resp, err := svc.LoginUser(ctx, "leo", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, dto.ID, claims.Subject)
	assert.Equal(t, "leo", claims.Username)
}

func TestLoginUser_RejectsBadCredentials(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "leo", "hunter2")
	require.NoError(t, err)

	_, err = svc.LoginUser(ctx, "leo", "wrong")
	assert.Error(t, err)
	_, err = svc.LoginUser(ctx, "nobody", "hunter2")
	assert.Error(t, err)
}

func TestParseToken_RejectsGarbageAndForeignKeys(t *testing.T) {
	svc := newService(t)
	other := newService(t)
	other.jwtKey = []byte("different-secret")

	ctx := context.Background()
	_, err := svc.RegisterUser(ctx, "leo", "hunter2")
	require.NoError(t, err)
	resp, err := svc.LoginUser(ctx, "leo", "hunter2")
	require.NoError(t, err)

	_, err = svc.ParseToken("not.a.token")
	assert.Error(t, err)
	_, err = other.ParseToken(resp.Token)
	assert.Error(t, err)
}
