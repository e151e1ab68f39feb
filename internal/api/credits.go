package api

import (
	"net/http"
	"os"

	"sublingo_go_backend/internal/errors"
	"sublingo_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// resetPeriodicCreditsHandler reapplies tier allotments to the periodic
// bucket. Meant to be hit by the scheduler, not end users, so it is
// guarded by a shared secret instead of the auth middleware. With a
// userId in the body only that user is reset; otherwise every ledger is.
func resetPeriodicCreditsHandler(
	creditService *services.CreditService,
	userService *services.UserService,
	allotments map[string]int64,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv("CRON_SECRET")
		if secret == "" || c.GetHeader("X-Cron-Secret") != secret {
			errors.HandleError(c, errors.New401Error())
			return
		}

		var req struct {
			UserID string `json:"userId"`
		}
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				errors.HandleError(c, errors.New400Error(err.Error()))
				return
			}
		}

		if req.UserID != "" {
			user, err := userService.GetByExternalID(req.UserID)
			if err != nil {
				errors.HandleError(c, errors.New404Error("User not found"))
				return
			}
			if err := creditService.ResetPeriodic(c.Request.Context(), req.UserID, allotments[user.Tier]); err != nil {
				errors.HandleError(c, errors.New500Error(err))
				return
			}
		} else {
			if err := creditService.ResetAllPeriodic(c.Request.Context(), allotments); err != nil {
				errors.HandleError(c, errors.New500Error(err))
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
