package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type newCommentRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Content  string `json:"content" binding:"required,min=1,max=1000"`
}

type updateCommentRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Content  string `json:"content" binding:"required,min=1,max=1000"`
}

// requirePost reports whether the parent post exists, writing the 404
// itself when it does not. Comment and like routes hang off a post id, so
// a missing parent short-circuits before the service runs.
func (a *Api) requirePost(c *gin.Context, postID string) bool {
	_, err := a.posts.Get(c.Request.Context(), postID)
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return false
	}
	return true
}

func (a *Api) ListComments(c *gin.Context) {
	postID := c.Param("postId")
	if !a.requirePost(c, postID) {
		return
	}

	comments, err := a.comments.List(c.Request.Context(), postID)
	if err != nil {
		respondServiceError(c, err, "Comment not found")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (a *Api) GetComment(c *gin.Context) {
	comment, err := a.comments.Get(c.Request.Context(), c.Param("postId"), c.Param("commentId"))
	if err != nil {
		respondServiceError(c, err, "Comment not found")
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (a *Api) CreateComment(c *gin.Context) {
	// Body validation wins over a missing parent: an invalid body is 400
	// even when the post does not exist.
	var req newCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	postID := c.Param("postId")
	if !a.requirePost(c, postID) {
		return
	}

	comment, err := a.comments.Create(c.Request.Context(), postID, req.Username, req.Content)
	if err != nil {
		respondServiceError(c, err, "Comment not found")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (a *Api) UpdateComment(c *gin.Context) {
	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	comment, err := a.comments.Update(c.Request.Context(), c.Param("postId"), c.Param("commentId"), req.Username, req.Content)
	if err != nil {
		respondServiceError(c, err, "Comment not found")
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (a *Api) DeleteComment(c *gin.Context) {
	if err := a.comments.Delete(c.Request.Context(), c.Param("postId"), c.Param("commentId")); err != nil {
		respondServiceError(c, err, "Comment not found")
		return
	}
	c.Status(http.StatusNoContent)
}
