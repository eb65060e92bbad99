package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"protomilk/internal/middlewares"
	"protomilk/internal/repositories"
	"protomilk/internal/responses"
	"protomilk/internal/utils"
)

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := utils.ParseID(c.Param(param))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, nil, param+": "+err.Error())
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return false
	}
	return true
}

// failStore maps a service error to 404 when no row matched and 500 otherwise.
// A 500 carries the store's own message in error and the service context in message.
func failStore(c *gin.Context, err error, entity string) {
	if errors.Is(err, repositories.ErrNotFound) {
		responses.Fail(c, http.StatusNotFound, nil, entity+" not found")
		return
	}
	log.Printf("request %s: %s %s: %v", middlewares.RequestID(c), c.Request.Method, c.Request.URL.Path, err)
	responses.Fail(c, http.StatusInternalServerError, rootCause(err), err.Error())
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
