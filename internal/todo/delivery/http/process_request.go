package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"vif/internal/model"
	"vif/pkg/datemath"
)

// selectedDate resolves the request's calendar date: an explicit YYYY-MM-DD
// wins, otherwise today in the caller's timezone (UTC when invalid or absent).
func selectedDate(date, timezone string) model.Date {
	if date != "" {
		if d, err := model.ParseDate(date); err == nil {
			return d
		}
	}

	parser, err := datemath.NewParser(timezone)
	if err != nil {
		parser, _ = datemath.NewParser("UTC")
	}
	d, _ := model.ParseDate(parser.Anchors(time.Now()).Today)
	return d
}

// processResolveReq binds and validates the resolve request body.
func (h *handler) processResolveReq(c *gin.Context) (resolveReq, error) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.selectedDate = selectedDate(req.Date, req.Timezone)
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.selectedDate = selectedDate(req.Date, req.Timezone)
	return req, nil
}

// processEditReq binds and validates the edit request body + URI param.
func (h *handler) processEditReq(c *gin.Context) (editReq, error) {
	var req editReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}

// processClearReq binds and validates the clear request body.
func (h *handler) processClearReq(c *gin.Context) (clearReq, error) {
	var req clearReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.selectedDate = selectedDate(req.Date, req.Timezone)
	return req, nil
}
