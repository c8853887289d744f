package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Response struct {
	Error string `json:"error"`
}

var (
	OKResponse        = Response{}
	ForbiddenResponse = Response{"forbidden"}
	NotFoundResponse  = Response{"not found"}
)

// abortWithError maps store errors to the HTTP taxonomy: missing entity,
// duplicate key, everything else.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, NotFoundResponse)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, gin.H{"error": "duplicate"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
