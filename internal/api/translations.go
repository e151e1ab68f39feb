package api

import (
	stderrors "errors"
	"net/http"

	"sublingo_go_backend/internal/captions"
	"sublingo_go_backend/internal/errors"
	"sublingo_go_backend/internal/models"
	"sublingo_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type translationRequest struct {
	UserID           string `json:"userId" binding:"required"`
	UserTier         string `json:"userTier" binding:"required"`
	VideoSource      string `json:"videoSource" binding:"required"`
	YoutubeURL       string `json:"youtubeUrl"`
	VideoID          string `json:"videoId"`
	TargetLanguage   string `json:"targetLanguage" binding:"required"`
	TranslationStyle string `json:"translationStyle"`
	VideoTopic       string `json:"videoTopic"`
}

func translateHandler(pipeline *services.PipelineService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req translationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.HandleError(c, errors.New400Error(err.Error()))
			return
		}

		resp, err := pipeline.Translate(c.Request.Context(), services.TranslationRequest{
			UserID:         req.UserID,
			UserTier:       req.UserTier,
			VideoSource:    req.VideoSource,
			YoutubeURL:     req.YoutubeURL,
			VideoID:        req.VideoID,
			TargetLanguage: req.TargetLanguage,
			Style:          req.TranslationStyle,
			Topic:          req.VideoTopic,
		})
		if err != nil {
			errors.HandleError(c, mapPipelineError(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"videoHashId":    resp.VideoID,
			"creditsCharged": resp.CreditsCharged,
			"historyId":      resp.HistoryID,
			"wasFree":        resp.WasFree,
			"cues":           resp.Cues,
			"message":        resp.Message,
		})
	}
}

// mapPipelineError translates pipeline failures into the HTTP error
// taxonomy: 400 for malformed/unsupported/unactionable-video requests,
// 402 for insufficient credits, 404 for unknown users, 500 for upstream
// and translation failures.
func mapPipelineError(err error) error {
	var insufficient *services.InsufficientCreditsError
	switch {
	case stderrors.As(err, &insufficient):
		return errors.New402Error(
			"Not enough credits for this translation. Upgrade your plan or wait for your next reset.",
			insufficient.Required, insufficient.Available)
	case stderrors.Is(err, services.ErrValidation):
		return errors.New400Error(err.Error())
	case stderrors.Is(err, services.ErrUnsupportedSource):
		return errors.New400Error("Only YouTube videos are supported at the moment.")
	case stderrors.Is(err, services.ErrUserNotFound):
		return errors.New404Error("User not found")
	case stderrors.Is(err, captions.ErrNoCaptions):
		return errors.New400Error("This video has no captions available. Please try a different video.")
	case stderrors.Is(err, captions.ErrVideoUnavailable):
		return errors.New400Error("This video is private, removed or unavailable in your region.")
	default:
		return errors.New500Error(err)
	}
}

func getVideoHandler(cacheService *services.TranslationCacheService) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := cacheService.GetVideo(c.Request.Context(), c.Param("video_id"))
		if err != nil {
			errors.HandleError(c, errors.New500Error(err))
			return
		}
		if record == nil {
			errors.HandleError(c, errors.New404Error("Video not found"))
			return
		}

		keys := make([]string, len(record.Translations))
		for i, entry := range record.Translations {
			keys[i] = entry.CacheKey
		}

		c.JSON(http.StatusOK, gin.H{
			"video_id":         record.VideoID,
			"title":            record.Title,
			"duration_seconds": record.DurationSeconds,
			"thumbnail_url":    record.ThumbnailURL,
			"total_accesses":   record.TotalAccesses,
			"translations":     keys,
		})
	}
}

func getCreditsHandler(creditService *services.CreditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		balance, err := creditService.Balance(c.Request.Context(), user.ExternalID)
		if err != nil {
			errors.HandleError(c, errors.New500Error(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"trial":     balance.Trial,
			"periodic":  balance.Periodic,
			"purchased": balance.Purchased,
			"total":     balance.Total(),
		})
	}
}

func getHistoryHandler(historyService *services.HistoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		records, err := historyService.ListByUser(c.Request.Context(), user.ExternalID, 50)
		if err != nil {
			errors.HandleError(c, errors.New500Error(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"history": records})
	}
}

func touchHistoryHandler(historyService *services.HistoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		if err := historyService.Touch(c.Request.Context(), user.ExternalID, c.Param("history_id")); err != nil {
			errors.HandleError(c, errors.New404Error("History record not found"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func currentUser(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get("user")
	if !exists {
		errors.HandleError(c, errors.New401Error())
		return nil, false
	}
	userModel, ok := user.(*models.User)
	if !ok {
		errors.HandleError(c, errors.New500Error(stderrors.New("invalid user type in context")))
		return nil, false
	}
	return userModel, true
}
