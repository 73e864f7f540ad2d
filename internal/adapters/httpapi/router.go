package httpapi

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	postEntity "scribe/internal/core/post"
	userapp "scribe/internal/core/user/service"

	"scribe/internal/adapters/httpapi/middleware"
	groupPort "scribe/internal/ports/group"
	"scribe/internal/ports/pagecache"
	postPort "scribe/internal/ports/post"
	storagePort "scribe/internal/ports/storage"
	userPort "scribe/internal/ports/user"
)

// indexCacheTTL matches the short cache the index listing has always had.
const indexCacheTTL = 20 * time.Second

// Inbound ports: what the controllers need from the use cases.

type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, username, password string) (*userPort.UserDTO, error)
	ParseToken(raw string) (*userapp.Claims, error)
}

type PostUseCase interface {
	ListPosts(ctx context.Context, page string) (*postPort.PageDTO, error)
	ListGroupPosts(ctx context.Context, slug, page string) (*groupPort.GroupDTO, *postPort.PageDTO, error)
	ListAuthorPosts(ctx context.Context, username, page string) (*userPort.UserDTO, int64, *postPort.PageDTO, error)
	GetPost(ctx context.Context, id string) (*postPort.PostDTO, int64, error)
	CreatePost(ctx context.Context, form *postEntity.Form, authorID string) (*postPort.PostDTO, error)
	EditPost(ctx context.Context, id string, form *postEntity.Form, requesterID string) (*postPort.PostDTO, error)
}

type GroupUseCase interface {
	ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error)
}

// SetupRoutes wires the controllers onto a gin engine. The use cases are
// injected from the outside; the cache may be nil.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	groupUC GroupUseCase,
	images storagePort.ImageStore,
	cache pagecache.PageCache,
	templatesGlob string,
) *gin.Engine {
	r := gin.Default()
	r.SetFuncMap(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
		"dec": func(i int) int { return i - 1 },
	})
	r.LoadHTMLGlob(templatesGlob)

	uc := NewUserController(userUC)
	pc := NewPostController(postUC, groupUC, images)

	r.GET("/", middleware.CachePage(cache, indexCacheTTL), pc.Index)
	r.GET("/group/:slug/", pc.GroupPosts)
	r.GET("/profile/:username/", pc.Profile)
	r.GET("/posts/:id/", pc.Detail)

	auth := middleware.AuthRequired(userUC)
	r.GET("/create/", auth, pc.CreateForm)
	r.POST("/create/", auth, pc.Create)
	r.GET("/posts/:id/edit/", auth, pc.EditForm)
	r.POST("/posts/:id/edit/", auth, pc.Edit)

	r.GET("/auth/login/", uc.LoginForm)
	r.POST("/auth/login/", uc.Login)
	r.GET("/auth/signup/", uc.SignupForm)
	r.POST("/auth/signup/", uc.Signup)
	r.GET("/auth/logout/", uc.Logout)

	// Unmatched URLs get the custom not-found page, with a real 404 status.
	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"path": c.Request.URL.Path})
	})

	return r
}
