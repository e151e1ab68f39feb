package translate

import (
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"

	"sublingo_go_backend/internal/retry"
)

// ClassifyUpstream maps model-service errors onto retry classes. Only
// rate limiting (429) and overload (503) are transient; everything else is
// fatal for the request.
func ClassifyUpstream(err error) retry.Class {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return classifyStatus(gerr.Code)
	}

	var aerr *openai.APIError
	if errors.As(err, &aerr) {
		return classifyStatus(aerr.HTTPStatusCode)
	}

	var rerr *openai.RequestError
	if errors.As(err, &rerr) {
		return classifyStatus(rerr.HTTPStatusCode)
	}

	return retry.Fatal
}

func classifyStatus(code int) retry.Class {
	switch code {
	case http.StatusTooManyRequests:
		return retry.RateLimited
	case http.StatusServiceUnavailable:
		return retry.Overloaded
	default:
		return retry.Fatal
	}
}
