package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	postEntity "scribe/internal/core/post"
	postapp "scribe/internal/core/post/service"

	"scribe/internal/config"
	groupPort "scribe/internal/ports/group"
	postPort "scribe/internal/ports/post"
	storagePort "scribe/internal/ports/storage"
	userPort "scribe/internal/ports/user"

	"go.uber.org/zap"
)

type PostController struct {
	pc     PostUseCase
	gc     GroupUseCase
	images storagePort.ImageStore
}

func NewPostController(pc PostUseCase, gc GroupUseCase, images storagePort.ImageStore) *PostController {
	return &PostController{pc: pc, gc: gc, images: images}
}

// Index renders the latest posts across all groups and authors.
func (ctl *PostController) Index(c *gin.Context) {
	page, err := ctl.pc.ListPosts(c.Request.Context(), c.Query("page"))
	if err != nil {
		ctl.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"page": page})
}

// GroupPosts renders one group's posts, or 404 for an unknown slug.
func (ctl *PostController) GroupPosts(c *gin.Context) {
	group, page, err := ctl.pc.ListGroupPosts(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if err != nil {
		if errors.Is(err, groupPort.ErrNotFound) {
			notFound(c)
			return
		}
		ctl.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "group_list.html", gin.H{"group": group, "page": page})
}

// Profile renders one author's posts plus their total post count.
func (ctl *PostController) Profile(c *gin.Context) {
	author, count, page, err := ctl.pc.ListAuthorPosts(c.Request.Context(), c.Param("username"), c.Query("page"))
	if err != nil {
		if errors.Is(err, userPort.ErrNotFound) {
			notFound(c)
			return
		}
		ctl.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"author":      author,
		"posts_count": count,
		"page":        page,
	})
}

// Detail renders a single post and the author's total post count.
func (ctl *PostController) Detail(c *gin.Context) {
	post, count, err := ctl.pc.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, postPort.ErrNotFound) {
			notFound(c)
			return
		}
		ctl.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_detail.html", gin.H{
		"post":        post,
		"posts_count": count,
	})
}

// CreateForm renders an empty submission form.
func (ctl *PostController) CreateForm(c *gin.Context) {
	ctl.renderForm(c, &postEntity.Form{}, gin.H{})
}

// Create persists a new post owned by the requester and sends them to their
// own profile listing.
func (ctl *PostController) Create(c *gin.Context) {
	form := ctl.bindForm(c)

	_, err := ctl.pc.CreatePost(c.Request.Context(), form, c.GetString("userID"))
	if err != nil {
		if errors.Is(err, postapp.ErrInvalidForm) {
			ctl.renderForm(c, form, gin.H{})
			return
		}
		ctl.serverError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+c.GetString("username")+"/")
}

// EditForm renders the form pre-filled with the post's current values. A
// requester who is not the author is sent to the post's detail page without
// any error.
func (ctl *PostController) EditForm(c *gin.Context) {
	id := c.Param("id")
	post, _, err := ctl.pc.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, postPort.ErrNotFound) {
			notFound(c)
			return
		}
		ctl.serverError(c, err)
		return
	}

	if post.Author == nil || post.Author.ID != c.GetString("userID") {
		c.Redirect(http.StatusFound, "/posts/"+id+"/")
		return
	}

	form := &postEntity.Form{Text: post.Text, Image: post.Image}
	if post.Group != nil {
		form.GroupID = post.Group.ID
	}
	ctl.renderForm(c, form, gin.H{"is_edit": true, "post_id": id})
}

// Edit applies the submission to the post, author only.
func (ctl *PostController) Edit(c *gin.Context) {
	id := c.Param("id")
	form := ctl.bindForm(c)

	_, err := ctl.pc.EditPost(c.Request.Context(), id, form, c.GetString("userID"))
	if err != nil {
		switch {
		case errors.Is(err, postPort.ErrNotFound):
			notFound(c)
		case errors.Is(err, postapp.ErrNotOwner):
			c.Redirect(http.StatusFound, "/posts/"+id+"/")
		case errors.Is(err, postapp.ErrInvalidForm):
			ctl.renderForm(c, form, gin.H{"is_edit": true, "post_id": id})
		default:
			ctl.serverError(c, err)
		}
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+id+"/")
}

// bindForm reads the submitted fields and stores the uploaded image, if any.
func (ctl *PostController) bindForm(c *gin.Context) *postEntity.Form {
	form := &postEntity.Form{
		Text:    c.PostForm("text"),
		GroupID: c.PostForm("group"),
	}

	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return form
	}
	src, err := file.Open()
	if err != nil {
		config.Logger.Warn("could not open uploaded image", zap.Error(err))
		return form
	}
	defer src.Close()

	rel, err := ctl.images.Save(file.Filename, src)
	if err != nil {
		config.Logger.Warn("could not store uploaded image", zap.Error(err))
		return form
	}
	form.Image = rel
	return form
}

// renderForm shows the shared create/edit template, with the submitted
// values and field errors preserved.
func (ctl *PostController) renderForm(c *gin.Context, form *postEntity.Form, extra gin.H) {
	groups, err := ctl.gc.ListGroups(c.Request.Context())
	if err != nil {
		ctl.serverError(c, err)
		return
	}

	ctx := gin.H{"form": form, "groups": groups}
	for k, v := range extra {
		ctx[k] = v
	}
	c.HTML(http.StatusOK, "create_post.html", ctx)
}

func (ctl *PostController) serverError(c *gin.Context, err error) {
	config.Logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.String(http.StatusInternalServerError, "internal server error")
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"path": c.Request.URL.Path})
}
