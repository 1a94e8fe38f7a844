package handler

import (
	"net/http"
	"strconv"

	"github.com/Churchillk/WealthTracker/internal/models"
	"github.com/Churchillk/WealthTracker/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user the middleware put on the
// context. Writes the 401 envelope itself on failure.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	return user, true
}

// pathID parses the named numeric path parameter. Writes the 400 envelope
// itself on failure.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := pathIDQuiet(c, name)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return id, true
}

// pathIDQuiet parses the named numeric path parameter without writing a
// response, for endpoints with their own reply shape.
func pathIDQuiet(c *gin.Context, name string) (uint, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}
