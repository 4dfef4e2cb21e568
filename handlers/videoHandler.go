package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"OncoCare/models"
	"OncoCare/scheduling"
	"OncoCare/services"
)

type VideoHandler struct {
	service *services.VideoService
}

func NewVideoHandler(service *services.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var video models.Video
	if err := c.ShouldBindJSON(&video); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &video); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, video)
}

func (h *VideoHandler) GetVideoByID(c *gin.Context) {
	id := c.Param("video_id")
	video, err := h.service.GetByID(c, id)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, video)
}

func (h *VideoHandler) GetAllVideos(c *gin.Context) {
	videos, err := h.service.GetAll(c, c.Query("category"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, videos)
}

func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	var video models.Video
	if err := c.ShouldBindJSON(&video); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	video.ID = c.Param("video_id")
	if err := h.service.Update(c, &video); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, video)
}

func (h *VideoHandler) LikeVideo(c *gin.Context) {
	id := c.Param("video_id")
	if err := h.service.Like(c, id); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.Status(200)
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	id := c.Param("video_id")
	if err := h.service.Delete(c, id); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Video deleted"})
}
