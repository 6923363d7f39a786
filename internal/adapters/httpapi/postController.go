package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	postapp "cuff/internal/core/post/service"
	postPort "cuff/internal/ports/post"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		UserID               uint      `json:"userId" binding:"required"`
		Title                string    `json:"title" binding:"required"`
		Location             string    `json:"location"`
		Description          string    `json:"description"`
		DietarySpecification string    `json:"dietarySpecification"`
		AvailableFrom        time.Time `json:"availableFrom" binding:"required"`
		AvailableUntil       time.Time `json:"availableUntil" binding:"required"`
		ImageURL             string    `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), postPort.CreatePostInput{
		UserID:               req.UserID,
		Title:                req.Title,
		Location:             req.Location,
		Description:          req.Description,
		DietarySpecification: req.DietarySpecification,
		AvailableFrom:        req.AvailableFrom,
		AvailableUntil:       req.AvailableUntil,
		ImageURL:             req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, postapp.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "only administrators can create posts"})
		case errors.Is(err, postapp.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid availability window"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		}
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) ListActivePosts(c *gin.Context) {
	posts, err := ctl.pc.ListActivePosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) ListRecentPosts(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	posts, err := ctl.pc.ListRecentPosts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch recent posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) GetPostByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := ctl.pc.GetPostByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, postPort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch post"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Title                string    `json:"title" binding:"required"`
		Location             string    `json:"location"`
		Description          string    `json:"description"`
		DietarySpecification string    `json:"dietarySpecification"`
		AvailableFrom        time.Time `json:"availableFrom" binding:"required"`
		AvailableUntil       time.Time `json:"availableUntil" binding:"required"`
		ImageURL             string    `json:"imageUrl"`
		Status               string    `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	p, err := ctl.pc.UpdatePost(c.Request.Context(), id, postPort.UpdatePostInput{
		Title:                req.Title,
		Location:             req.Location,
		Description:          req.Description,
		DietarySpecification: req.DietarySpecification,
		AvailableFrom:        req.AvailableFrom,
		AvailableUntil:       req.AvailableUntil,
		ImageURL:             req.ImageURL,
		Status:               req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, postPort.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, postapp.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid availability window"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update post"})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.pc.DeletePost(c.Request.Context(), id); err != nil {
		if errors.Is(err, postPort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete post"})
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses an unsigned integer path parameter, replying 400 itself
// when the value is malformed.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
