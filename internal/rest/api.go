package rest

import (
	"net/http"

	"socialfeed-api/feed/application"

	"github.com/gin-gonic/gin"
)

// Api groups the HTTP handlers around the entity services. The handlers
// are thin: bind, call a service, map the outcome to a status code.
type Api struct {
	posts    *application.PostService
	comments *application.CommentService
	likes    *application.LikeService
}

func NewApi(posts *application.PostService, comments *application.CommentService, likes *application.LikeService) *Api {
	return &Api{
		posts:    posts,
		comments: comments,
		likes:    likes,
	}
}

// Register attaches every route to the engine.
func (a *Api) Register(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	posts := api.Group("/posts")
	{
		posts.GET("", a.ListPosts)
		posts.POST("", a.CreatePost)
		posts.GET("/:postId", a.GetPost)
		posts.PATCH("/:postId", a.UpdatePost)
		posts.DELETE("/:postId", a.DeletePost)
	}

	comments := api.Group("/posts/:postId/comments")
	{
		comments.GET("", a.ListComments)
		comments.POST("", a.CreateComment)
		comments.GET("/:commentId", a.GetComment)
		comments.PATCH("/:commentId", a.UpdateComment)
		comments.DELETE("/:commentId", a.DeleteComment)
	}

	likes := api.Group("/posts/:postId/likes")
	{
		likes.POST("", a.LikePost)
		likes.DELETE("", a.UnlikePost)
	}
}
