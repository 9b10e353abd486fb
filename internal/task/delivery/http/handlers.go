package http

import (
	"github.com/gin-gonic/gin"

	"dothis/internal/middleware"
	"dothis/pkg/response"
)

// Parse godoc
// @Summary     Parse task text
// @Description Extracts title, date, time, priority, project, duration and recurrence from one line of text. Nothing is stored.
// @Tags        Parse
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// PreviewRecurrence godoc
// @Summary     Preview a recurrence
// @Description Describes a recurrence config and lists its next occurrences.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Recurrence config, start date and count"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/recurrence/preview [POST]
func (h *handler) PreviewRecurrence(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PreviewRecurrence(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.PreviewRecurrence: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Create godoc
// @Summary     Create a task from text
// @Description Parses the text and stores the task. An explicit recurrence overrides the one found in the text.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    false "Acting user (default: anonymous)"
// @Param       body      body   createReq true  "Task text and overrides"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Nothing left to use as a title"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the user's tasks, open ones first, ordered by due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Acting user (default: anonymous)"
// @Param       project   query  string false "Filter by project"
// @Param       completed query  bool   false "Filter by completion"
// @Param       limit     query  int    false "Page size (default: 20)"
// @Param       offset    query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string false "Acting user (default: anonymous)"
// @Param       id        path   string true  "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errInvalidID, nil)
		return
	}

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes the task and, when it was pushed, its calendar event.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string false "Acting user (default: anonymous)"
// @Param       id        path   string true  "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errInvalidID, nil)
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks the task done. Recurring tasks get their next instance scheduled from the completed due date.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string false "Acting user (default: anonymous)"
// @Param       id        path   string true  "Task ID"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already completed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errInvalidID, nil)
		return
	}

	output, err := h.uc.Complete(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// UpdateRecurrence godoc
// @Summary     Change a task's recurrence
// @Description Replaces the schedule of an open task. Completed instances are left alone.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string              false "Acting user (default: anonymous)"
// @Param       id        path   string              true  "Task ID"
// @Param       body      body   updateRecurrenceReq true  "New recurrence"
// @Success     200 {object} updateRecurrenceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already completed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/recurrence [PUT]
func (h *handler) UpdateRecurrence(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateRecurrenceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateRecurrence(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateRecurrence: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateRecurrenceResp(output))
}
