package api

import (
	"sublingo_go_backend/internal/auth"
	"sublingo_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	pipeline *services.PipelineService,
	creditService *services.CreditService,
	historyService *services.HistoryService,
	cacheService *services.TranslationCacheService,
	stripeService *services.StripeService,
	userService *services.UserService,
	periodicAllotment map[string]int64,
) {
	api := r.Group("/api")
	{
		api.POST("/translations", translateHandler(pipeline))
		api.GET("/videos/:video_id", getVideoHandler(cacheService))

		api.GET("/users/me/credits", auth.AuthMiddleware(userService), getCreditsHandler(creditService))
		api.GET("/users/me/history", auth.AuthMiddleware(userService), getHistoryHandler(historyService))
		api.POST("/users/me/history/:history_id/touch", auth.AuthMiddleware(userService), touchHistoryHandler(historyService))

		api.POST("/purchase-credits", auth.AuthMiddleware(userService), purchaseCreditsHandler(stripeService))
		api.POST("/stripe/webhook", stripeWebhookHandler(stripeService, creditService))

		api.POST("/internal/credits/reset", resetPeriodicCreditsHandler(creditService, userService, periodicAllotment))
	}
}
