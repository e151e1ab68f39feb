package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"sublingo_go_backend/internal/errors"
	"sublingo_go_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
)

// 1 credit = $0.001, so a pack of N credits costs N/10 cents. Stripe
// enforces a 50-cent minimum charge.
const minChargeCents = 50

func purchaseCreditsHandler(stripeService *services.StripeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Credits int64 `json:"credits" binding:"required,min=1000"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			errors.HandleError(c, errors.New400Error(err.Error()))
			return
		}

		user, ok := currentUser(c)
		if !ok {
			return
		}

		amountCents := request.Credits / 10
		if amountCents < minChargeCents {
			amountCents = minChargeCents
		}

		session, err := stripeService.CreateCheckoutSession(user.ExternalID, request.Credits, amountCents)
		if err != nil {
			errors.HandleError(c, errors.New500Error(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"session_id": session.ID})
	}
}

func stripeWebhookHandler(stripeService *services.StripeService, creditService *services.CreditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const MaxBodyBytes = int64(65536)
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
			return
		}

		signatureHeader := c.GetHeader("Stripe-Signature")
		event, err := stripeService.HandleWebhook(payload, signatureHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to verify webhook signature"})
			return
		}

		switch event.Type {
		case "checkout.session.completed":
			var session stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse checkout session"})
				return
			}

			if err := processSuccessfulCheckoutSession(c, session, creditService); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process checkout session"})
				return
			}

		default:
			// Ignore event types we do not handle.
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func processSuccessfulCheckoutSession(c *gin.Context, session stripe.CheckoutSession, creditService *services.CreditService) error {
	userID := session.ClientReferenceID
	if userID == "" {
		return fmt.Errorf("checkout session missing client reference id")
	}

	credits, err := strconv.ParseInt(session.Metadata["credits"], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid credits metadata: %v", err)
	}

	return creditService.AddPurchased(c.Request.Context(), userID, credits)
}
