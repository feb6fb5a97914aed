package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/cache"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httperr"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httpresp"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/media"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type VideoHandler struct {
	db       *gorm.DB
	cache    *cache.VideoCache
	uploader *media.Uploader
	log      *zap.Logger
}

func NewVideoHandler(db *gorm.DB, videoCache *cache.VideoCache, uploader *media.Uploader, log *zap.Logger) *VideoHandler {
	return &VideoHandler{
		db:       db,
		cache:    videoCache,
		uploader: uploader,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type VideoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	YoutubeURL  string `json:"youtube_url" binding:"required"`
	CategoryID  uint   `json:"category_id"`
	Difficulty  string `json:"difficulty"`
	BodyParts   string `json:"body_parts"`
	DurationMin int    `json:"duration_min"`
	Active      *bool  `json:"active"`
}

// categoryRef maps the zero value to NULL.
func categoryRef(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

var validDifficulties = map[string]bool{
	"":             true,
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

// ======================================================
// LIST
// ======================================================

func (h *VideoHandler) List(c *gin.Context) {
	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	difficulty := strings.TrimSpace(strings.ToLower(c.Query("difficulty")))
	bodyPart := strings.TrimSpace(strings.ToLower(c.Query("bodyPart")))
	if bodyPart == "" {
		bodyPart = strings.TrimSpace(strings.ToLower(c.Query("body_part")))
	}
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	cacheKey := fmt.Sprintf("%s|%s|%s|%s", category, difficulty, bodyPart, query)

	var videos []models.ExerciseVideo
	if h.cache.Get(c.Request.Context(), cacheKey, &videos) {
		httpresp.List[models.ExerciseVideo](c, videos)
		return
	}

	q := h.db.Preload("Category").Where("active = true")

	if category != "" {
		q = q.Joins("JOIN video_categories ON video_categories.id = exercise_videos.category_id").
			Where("LOWER(video_categories.name) = ?", category)
	}
	if difficulty != "" {
		q = q.Where("LOWER(difficulty) = ?", difficulty)
	}
	if bodyPart != "" {
		q = q.Where("LOWER(body_parts) LIKE ?", "%"+bodyPart+"%")
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if err := q.Order("exercise_videos.id ASC").Find(&videos).Error; err != nil {
		httperr.Internal(c, "failed_to_list_videos", "Could not list videos.")
		return
	}

	h.cache.Set(c.Request.Context(), cacheKey, videos)
	httpresp.List[models.ExerciseVideo](c, videos)
}

func (h *VideoHandler) ListCategories(c *gin.Context) {
	var cats []models.VideoCategory
	if err := h.db.Order("name ASC").Find(&cats).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Could not list categories.")
		return
	}

	httpresp.List[models.VideoCategory](c, cats)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *VideoHandler) Create(c *gin.Context) {
	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "The request body could not be parsed.")
		return
	}

	if !validDifficulties[strings.ToLower(req.Difficulty)] {
		httperr.BadRequest(c, "invalid_difficulty", "Difficulty must be beginner, intermediate or advanced.")
		return
	}

	video := models.ExerciseVideo{
		Title:       req.Title,
		Description: req.Description,
		YoutubeURL:  req.YoutubeURL,
		CategoryID:  categoryRef(req.CategoryID),
		Difficulty:  strings.ToLower(req.Difficulty),
		BodyParts:   req.BodyParts,
		DurationMin: req.DurationMin,
		Active:      true,
	}

	if err := h.db.Create(&video).Error; err != nil {
		httperr.Internal(c, "failed_to_create_video", "Could not create the video.")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.Created(c, video)
}

func (h *VideoHandler) Update(c *gin.Context) {
	var video models.ExerciseVideo
	if err := h.db.First(&video, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "video_not_found", "Video not found.")
		return
	}

	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "The request body could not be parsed.")
		return
	}

	if !validDifficulties[strings.ToLower(req.Difficulty)] {
		httperr.BadRequest(c, "invalid_difficulty", "Difficulty must be beginner, intermediate or advanced.")
		return
	}

	video.Title = req.Title
	video.Description = req.Description
	video.YoutubeURL = req.YoutubeURL
	video.CategoryID = categoryRef(req.CategoryID)
	video.Difficulty = strings.ToLower(req.Difficulty)
	video.BodyParts = req.BodyParts
	video.DurationMin = req.DurationMin
	if req.Active != nil {
		video.Active = *req.Active
	}

	if err := h.db.Save(&video).Error; err != nil {
		httperr.Internal(c, "failed_to_update_video", "Could not update the video.")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.OK(c, video)
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.db.Delete(&models.ExerciseVideo{}, c.Param("id")).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_video", "Could not delete the video.")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	c.Status(204)
}

// ======================================================
// THUMBNAIL
// ======================================================

func (h *VideoHandler) UploadThumbnail(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "thumbnail_storage_unavailable", "Thumbnail storage is not configured.")
		return
	}

	var video models.ExerciseVideo
	if err := h.db.First(&video, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "video_not_found", "Video not found.")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A thumbnail file is required.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the upload.")
		return
	}
	defer src.Close()

	rendition, err := media.Thumbnail(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The file must be a JPEG or PNG image.")
		return
	}

	key := fmt.Sprintf("thumbnails/%s.webp", uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, rendition, "image/webp")
	if err != nil {
		h.log.Error("thumbnail upload failed", zap.Uint("video_id", video.ID), zap.Error(err))
		httperr.Internal(c, "failed_to_store_thumbnail", "Could not store the thumbnail.")
		return
	}

	video.ThumbnailURL = url
	if err := h.db.Save(&video).Error; err != nil {
		httperr.Internal(c, "failed_to_update_video", "Could not update the video.")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.OK(c, video)
}
