package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type newPostRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Content  string `json:"content" binding:"required,min=1,max=2000"`
}

type updatePostRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Content  string `json:"content" binding:"required,min=1,max=2000"`
}

func (a *Api) ListPosts(c *gin.Context) {
	posts, err := a.posts.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (a *Api) GetPost(c *gin.Context) {
	p, err := a.posts.Get(c.Request.Context(), c.Param("postId"))
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (a *Api) CreatePost(c *gin.Context) {
	var req newPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	p, err := a.posts.Create(c.Request.Context(), req.Username, req.Content)
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (a *Api) UpdatePost(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	p, err := a.posts.Update(c.Request.Context(), c.Param("postId"), req.Username, req.Content)
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (a *Api) DeletePost(c *gin.Context) {
	if err := a.posts.Delete(c.Request.Context(), c.Param("postId")); err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}
	c.Status(http.StatusNoContent)
}
