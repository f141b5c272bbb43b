package api

import (
	"net/http"
	"strconv"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/paging"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageFrom = 0
	defaultPageSize = 10
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// queryPage reads from/size with defaults and builds the block-aligned
// page. Bounds are validated here; the core never sees an invalid page.
func queryPage(c *gin.Context) (paging.Page, bool) {
	from, ok := queryInt(c, "from", defaultPageFrom)
	if !ok {
		return paging.Page{}, false
	}
	size, ok := queryInt(c, "size", defaultPageSize)
	if !ok {
		return paging.Page{}, false
	}

	page, err := paging.New(from, size)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid page bounds", nil)
		return paging.Page{}, false
	}
	return page, true
}

// queryState parses the booking state filter. Unknown values fail the
// request here at the edge.
func queryState(c *gin.Context) (booking.StateFilter, bool) {
	raw := c.DefaultQuery("state", string(booking.StateAll))
	state, err := booking.ParseStateFilter(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown state: "+raw, nil)
		return "", false
	}
	return state, true
}

func queryInt(c *gin.Context, name string, defaultValue int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return 0, false
	}
	return v, true
}

func callerID(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return 0, false
	}
	return id, true
}
