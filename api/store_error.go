package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/benvisser/call-of-doody-sub000/score"
	"github.com/benvisser/call-of-doody-sub000/store"
)

// abortWithStoreError maps a store failure to a response.
func abortWithStoreError(c *gin.Context, err error) {
	var validationErr *score.ValidationError

	switch {
	case errors.As(err, &validationErr):
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidReview, err)
	case errors.Is(err, store.ErrLocationNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorUnknownLocation, err)
	case errors.Is(err, store.ErrReviewNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorUnknownReview, err)
	case errors.Is(err, store.ErrDuplicateVote):
		abortWithEncoding(c, http.StatusConflict, errorDuplicateVote, err)
	case errors.Is(err, store.ErrUnknownAmenity):
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownAmenity, err)
	case errors.Is(err, store.ErrInvalidVote):
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidVote, err)
	case errors.Is(err, store.ErrReviewNotOwned):
		abortWithEncoding(c, http.StatusForbidden, errorReviewNotOwned, err)
	case errors.Is(err, store.ErrInvalidLocation):
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocation, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return primitive.NilObjectID, false
	}
	return id, true
}
