package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/audit"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/cache"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/calendar"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/config"
	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/handlers"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/media"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/middleware"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/retry"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/timezone"
	ucAppointment "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.ClinicTimezone)

	rules := domain.BusinessRules{
		OpenHour:       cfg.OpenHour,
		CloseHour:      cfg.CloseHour,
		LunchHour:      cfg.LunchHour,
		SlotMinutes:    cfg.SlotMinutes,
		MinDurationMin: cfg.MinDurationMin,
		MaxDurationMin: cfg.MaxDurationMin,
		MinLead:        0,
	}
	if cfg.MinLeadMinutes > 0 {
		rules.MinLead = time.Duration(cfg.MinLeadMinutes) * time.Minute
	}

	cal := calendar.NewGoogleClient(calendar.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RefreshToken: cfg.GoogleRefreshToken,
		CalendarID:   cfg.GoogleCalendarID,
		Timezone:     cfg.ClinicTimezone,
		Timeout:      cfg.RequestTimeout,
	}, log.Named("calendar"))

	policy := retry.DefaultPolicy()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log.Named("audit"))

	videoCache := cache.NewVideoCache(cfg.RedisAddr, log.Named("cache"))

	var uploader *media.Uploader
	if cfg.S3Bucket != "" {
		uploader = media.NewUploader(media.UploaderConfig{
			Region:        cfg.AWSRegion,
			AccessKey:     cfg.AWSAccessKey,
			SecretKey:     cfg.AWSSecretKey,
			Bucket:        cfg.S3Bucket,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(cal, rules, loc, policy, auditDispatcher, log.Named("book"))
	rescheduleUC := ucAppointment.NewRescheduleAppointment(cal, rules, loc, policy, auditDispatcher, log.Named("reschedule"))
	cancelUC := ucAppointment.NewCancelAppointment(cal, policy, auditDispatcher, log.Named("cancel"))
	getUC := ucAppointment.NewGetAppointment(cal, policy)
	slotsUC := ucAppointment.NewGetAvailableSlots(cal, rules, loc, policy)
	checkUC := ucAppointment.NewCheckAvailability(cal, policy)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(bookUC, rescheduleUC, cancelUC, getUC, cfg.SlotMinutes)
	availabilityHandler := handlers.NewAvailabilityHandler(slotsUC, checkUC, loc, cfg.SlotMinutes)
	videoHandler := handlers.NewVideoHandler(db, videoCache, uploader, log.Named("videos"))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RateLimit(rate.Limit(5), 10))
	{
		api.GET("/availability", availabilityHandler.SlotsForDay)
		api.GET("/availability/range", availabilityHandler.SlotsForRange)
		api.GET("/availability/check", availabilityHandler.Check)

		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments/:eventId", appointmentHandler.Get)
		api.PATCH("/appointments/:eventId", appointmentHandler.Update)
		api.DELETE("/appointments/:eventId", appointmentHandler.Cancel)

		api.GET("/videos", videoHandler.List)
		api.GET("/videos/categories", videoHandler.ListCategories)
		api.POST("/videos", videoHandler.Create)
		api.PATCH("/videos/:id", videoHandler.Update)
		api.DELETE("/videos/:id", videoHandler.Delete)
		api.POST("/videos/:id/thumbnail", videoHandler.UploadThumbnail)
	}
}
