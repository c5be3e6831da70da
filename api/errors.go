package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errorInternalServer = 999 + iota
	errorInvalidParameters
	errorInvalidToken
	errorUnauthorized
	errorForbidden
	errorUnknownLocation
	errorUnknownAmenity
	errorInvalidVote
	errorDuplicateVote
	errorInvalidReview
	errorUnknownReview
	errorReviewNotOwned
	errorInvalidLocation
)

var errorMessageMap = map[int]string{
	errorInternalServer:    "internal server error",
	errorInvalidParameters: "invalid parameters",
	errorInvalidToken:      "invalid token",
	errorUnauthorized:      "authorization required",
	errorForbidden:         "permission denied",
	errorUnknownLocation:   "location not found",
	errorUnknownAmenity:    "unknown amenity",
	errorInvalidVote:       "invalid vote",
	errorDuplicateVote:     "you have already voted on this amenity",
	errorInvalidReview:     "invalid review",
	errorUnknownReview:     "review not found",
	errorReviewNotOwned:    "review is not yours",
	errorInvalidLocation:   "invalid location",
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

// abortWithEncoding records errs on the context and aborts with a coded error
// body. The first error is exposed as the reason on client errors.
func abortWithEncoding(c *gin.Context, status, code int, errs ...error) {
	resp := ErrorResponse{
		Code:    code,
		Message: errorMessageMap[code],
	}

	for _, err := range errs {
		c.Error(err)
	}

	if status < http.StatusInternalServerError && len(errs) > 0 && errs[0] != nil {
		resp.Reason = errs[0].Error()
	}

	if status >= http.StatusInternalServerError {
		log.WithField("path", c.FullPath()).WithField("errors", c.Errors.String()).Error("request failed")
	}

	c.AbortWithStatusJSON(status, gin.H{"error": resp})
}
