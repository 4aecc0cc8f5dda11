package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymfit/pkg/middleware"
	"gymfit/pkg/utils"
)

// currentAccount answers 401 itself when the request carries no identity.
func currentAccount(c *gin.Context) (middleware.Identity, bool) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return middleware.Identity{}, false
	}
	return id, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// pageQuery reads ?page=, defaulting to 1. Non-numeric values are invalid.
func pageQuery(c *gin.Context) (int, error) {
	raw := c.Query("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, utils.ErrInvalidPage
	}
	return page, nil
}
