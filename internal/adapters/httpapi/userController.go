package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"scribe/internal/adapters/httpapi/middleware"
)

type UserController struct{ uc UserUseCase }

func NewUserController(uc UserUseCase) *UserController {
	return &UserController{uc: uc}
}

func (ctl *UserController) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"next": c.Query("next")})
}

// Login checks the credentials, sets the session cookie and returns the
// requester to where they came from.
func (ctl *UserController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	next := c.PostForm("next")

	resp, err := ctl.uc.LoginUser(c.Request.Context(), username, password)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"next":  next,
			"error": "invalid username or password",
		})
		return
	}

	maxAge := int(time.Until(time.Unix(resp.ExpiresAt, 0)).Seconds())
	c.SetCookie(middleware.AuthCookie, resp.Token, maxAge, "/", "", false, true)

	// Only same-site paths are honored as a return target.
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (ctl *UserController) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

func (ctl *UserController) Signup(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if _, err := ctl.uc.RegisterUser(c.Request.Context(), username, password); err != nil {
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"username": username,
			"error":    err.Error(),
		})
		return
	}

	c.Redirect(http.StatusFound, "/auth/login/")
}

func (ctl *UserController) Logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
