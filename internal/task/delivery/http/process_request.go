package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"dothis/internal/task"
)

// parseDate accepts ISO dates and the relative forms datemath understands.
func (h *handler) parseDate(s string) (time.Time, error) {
	t, err := h.dates.Parse(s, h.clock.Now())
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processPreviewReq(c *gin.Context) (task.PreviewRecurrenceInput, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.PreviewRecurrenceInput{}, err
	}

	cfg, err := h.toConfig(req.Recurrence)
	if err != nil {
		return task.PreviewRecurrenceInput{}, err
	}
	input := task.PreviewRecurrenceInput{Recurrence: cfg, Count: req.Count}
	if req.From != "" {
		from, err := h.parseDate(req.From)
		if err != nil {
			return task.PreviewRecurrenceInput{}, err
		}
		input.From = &from
	}
	return input, nil
}

func (h *handler) processCreateReq(c *gin.Context) (task.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CreateInput{}, err
	}

	input := task.CreateInput{
		Text:        req.Text,
		Description: req.Description,
		Priority:    req.Priority,
		Calendar:    req.Calendar,
	}
	if req.Recurrence != nil {
		cfg, err := h.toConfig(*req.Recurrence)
		if err != nil {
			return task.CreateInput{}, err
		}
		input.Recurrence = &cfg
	}
	return input, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateRecurrenceReq binds the request body + URI param.
func (h *handler) processUpdateRecurrenceReq(c *gin.Context) (task.UpdateRecurrenceInput, error) {
	var req updateRecurrenceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.UpdateRecurrenceInput{}, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return task.UpdateRecurrenceInput{}, errInvalidID
	}

	cfg, err := h.toConfig(req.Recurrence)
	if err != nil {
		return task.UpdateRecurrenceInput{}, err
	}
	return task.UpdateRecurrenceInput{ID: req.ID, Recurrence: cfg}, nil
}
