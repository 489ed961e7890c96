package http

import (
	"github.com/gin-gonic/gin"

	"task-prioritizer/pkg/response"
)

// Analyze godoc
// @Summary     Score and rank a task list
// @Description Scores every task from urgency, importance, effort and dependency impact, and returns them best-first with cycle analysis.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body         body  []taskReq true  "Tasks to analyze"
// @Param       strategy     query string    false "Weight preset (smart, fast, impact, deadline)"
// @Param       urgency      query number    false "Urgency weight override"
// @Param       importance   query number    false "Importance weight override"
// @Param       effort       query number    false "Effort weight override"
// @Param       dependencies query number    false "Dependencies weight override"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     500 {object} response.Resp      "Internal Server Error"
// @Router      /api/tasks/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		h.l.Warnf(ctx, "prioritize.http.Analyze processAnalyzeReq: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.reportError(c, "uc.Analyze", err)
		return
	}

	response.JSON(c, h.newAnalyzeResp(output))
}

// Suggest godoc
// @Summary     Suggest the next tasks to work on
// @Description Ranks the tasks passed as a JSON array in the "tasks" query parameter and returns the top entries.
// @Tags        Tasks
// @Produce     json
// @Param       tasks        query string true  "JSON-encoded array of tasks"
// @Param       strategy     query string false "Weight preset (smart, fast, impact, deadline)"
// @Param       urgency      query number false "Urgency weight override"
// @Param       importance   query number false "Importance weight override"
// @Param       effort       query number false "Effort weight override"
// @Param       dependencies query number false "Dependencies weight override"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     500 {object} response.Resp      "Internal Server Error"
// @Router      /api/tasks/suggest [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		h.l.Warnf(ctx, "prioritize.http.Suggest processSuggestReq: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.reportError(c, "uc.Suggest", err)
		return
	}

	response.JSON(c, h.newSuggestResp(output))
}

func (h *handler) reportError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()

	if mapped := h.mapError(err); mapped != nil {
		h.l.Warnf(ctx, "%s: %v", op, err)
		response.Error(c, mapped)
		return
	}

	h.l.Errorf(ctx, "%s: %v", op, err)
	response.InternalError(c, err)
}
