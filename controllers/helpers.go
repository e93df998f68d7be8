// Package controllers exposes the console's HTTP surface: thin Gin handlers
// over the workflow controller and the resource services, speaking the same
// envelope dialect as the platform API.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dronexpress/console-api/models"
	"github.com/dronexpress/console-api/services"
	"github.com/dronexpress/console-api/workflow"
)

// handleError translates workflow and gateway errors into responses.
// Returns true when the request is finished.
func handleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	var redirect *services.AuthRedirectError
	switch {
	case errors.As(err, &redirect):
		// The platform revoked the session mid-flight; this is a full
		// navigation, not an error payload.
		c.Redirect(http.StatusFound, redirect.Location)
		c.Abort()
	case errors.Is(err, workflow.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "detail": err.Error()})
	case errors.Is(err, workflow.ErrActionNotAllowed), errors.Is(err, workflow.ErrNoPendingPrompt):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "detail": err.Error()})
	}
	return true
}

// bindError rejects a request whose body failed declarative validation,
// before any platform call is made.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status": "error",
		"detail": "invalid request data",
		"errors": err.Error(),
	})
}

// respondResult forwards a typed platform result in the console envelope.
func respondResult[T any](c *gin.Context, res models.Result[T], err error) {
	if handleError(c, err) {
		return
	}
	if !res.Ok() {
		c.JSON(http.StatusOK, gin.H{"status": "error", "detail": res.Message()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": res.Value(), "message": res.Message()})
}

// listParams reads the uniform pagination/search query.
func listParams(c *gin.Context) (page, limit int, search string) {
	page = queryInt(c, "page", 1)
	limit = queryInt(c, "limit", workflow.DefaultPageSize)
	return page, limit, c.Query("search")
}

// queryInt parses an integer query parameter with a default.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// pathID parses the numeric :id path parameter, rejecting the request on
// malformed input.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "detail": "invalid id"})
		return 0, false
	}
	return id, true
}
