package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type likeRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
}

// unlikeRequest has no binding constraints: the body is optional and an
// absent username means "clear every like on the post".
type unlikeRequest struct {
	Username string `json:"username"`
}

func (a *Api) LikePost(c *gin.Context) {
	// Body validation wins over a missing parent: an invalid body is 400
	// even when the post does not exist.
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	postID := c.Param("postId")
	if !a.requirePost(c, postID) {
		return
	}

	like, err := a.likes.Like(c.Request.Context(), postID, req.Username)
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusCreated, like)
}

func (a *Api) UnlikePost(c *gin.Context) {
	postID := c.Param("postId")
	if !a.requirePost(c, postID) {
		return
	}

	// The body is optional; a missing or unreadable body falls back to the
	// bulk clear.
	var req unlikeRequest
	_ = c.ShouldBindJSON(&req)

	if err := a.likes.Unlike(c.Request.Context(), postID, req.Username); err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}
	c.Status(http.StatusNoContent)
}
