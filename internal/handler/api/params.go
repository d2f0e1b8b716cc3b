package api

import (
	"net/http"

	"lounge-pos/internal/handler/httperr"
	"lounge-pos/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, errs.Mark(err, errInvalidID),
			httperr.New(http.StatusBadRequest, "INVALID_ID", "Invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}
