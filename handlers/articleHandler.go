package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"OncoCare/models"
	"OncoCare/scheduling"
	"OncoCare/services"
)

type ArticleHandler struct {
	service *services.ArticleService
}

func NewArticleHandler(service *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var article models.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &article); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, article)
}

func (h *ArticleHandler) GetArticleByID(c *gin.Context) {
	id := c.Param("article_id")
	article, err := h.service.GetByID(c, id)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, article)
}

func (h *ArticleHandler) GetAllArticles(c *gin.Context) {
	articles, err := h.service.GetAll(c, c.Query("category"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, articles)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var article models.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	article.ID = c.Param("article_id")
	if err := h.service.Update(c, &article); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, article)
}

func (h *ArticleHandler) LikeArticle(c *gin.Context) {
	id := c.Param("article_id")
	if err := h.service.Like(c, id); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.Status(200)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id := c.Param("article_id")
	if err := h.service.Delete(c, id); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Article deleted"})
}
