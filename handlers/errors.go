package handlers

import (
	"net/http"

	"barberbook/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barberbook/utils"
)

// respondError maps scheduling error kinds to HTTP statuses; anything
// unclassified is an internal error.
func respondError(c *gin.Context, err error) {
	var status int
	switch scheduling.KindOf(err) {
	case scheduling.KindValidation, scheduling.KindOutOfHours, scheduling.KindInvalidState:
		status = http.StatusBadRequest
	case scheduling.KindForbidden:
		status = http.StatusForbidden
	case scheduling.KindNotFound:
		status = http.StatusNotFound
	case scheduling.KindConflict:
		status = http.StatusConflict
	default:
		utils.GetLogger().Error("internal error handling request",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{
		"error": err.Error(),
		"kind":  string(scheduling.KindOf(err)),
	})
}
