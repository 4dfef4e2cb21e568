package controllers

import (
	"OncoCare/handlers"
	"OncoCare/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupContentRoutes registers the education library and support chat routes.
// Writes to the library require the Moderator role.
func SetupContentRoutes(router *gin.Engine, articleHandler *handlers.ArticleHandler, videoHandler *handlers.VideoHandler, chatHandler *handlers.ChatHandler) {
	router.GET("/articles", articleHandler.GetAllArticles)
	router.GET("/articles/:article_id", articleHandler.GetArticleByID)
	router.POST("/articles/:article_id/like", articleHandler.LikeArticle)

	router.GET("/videos", videoHandler.GetAllVideos)
	router.GET("/videos/:video_id", videoHandler.GetVideoByID)
	router.POST("/videos/:video_id/like", videoHandler.LikeVideo)

	moderatorGroup := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware("Moderator"),
	)
	{
		moderatorGroup.POST("/articles", articleHandler.CreateArticle)
		moderatorGroup.PUT("/articles/:article_id", articleHandler.UpdateArticle)
		moderatorGroup.DELETE("/articles/:article_id", articleHandler.DeleteArticle)

		moderatorGroup.POST("/videos", videoHandler.CreateVideo)
		moderatorGroup.PUT("/videos/:video_id", videoHandler.UpdateVideo)
		moderatorGroup.DELETE("/videos/:video_id", videoHandler.DeleteVideo)
	}

	router.POST("/users/:user_id/chat/sessions", chatHandler.StartChatSession)
	router.POST("/users/:user_id/chat/sessions/:session_id/messages", chatHandler.PostChatMessage)
	router.GET("/users/:user_id/chat/sessions/:session_id/messages", chatHandler.GetChatHistory)
}
