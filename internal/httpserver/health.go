package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task-prioritizer/pkg/datemath"
	pkgErrors "task-prioritizer/pkg/errors"
	"task-prioritizer/pkg/response"
)

const (
	HealthMessage = "Task prioritizer is up"
	HealthVersion = "1.0.0"
	ServiceName   = "task-prioritizer"
)

var errDraining = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Server is shutting down.")

func statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusBody("healthy"))
}

// readyCheck reports the scoring calendar the server would use right now.
// It fails with 503 once shutdown has started.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.ErrorResp "Shutting down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.draining.Load() {
		response.Error(c, errDraining)
		return
	}

	body := statusBody("ready")
	body["timezone"] = srv.dateMath.Location().String()
	body["today"] = srv.dateMath.Today(srv.now()).Format(datemath.ISODate)
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusBody("alive"))
}

func (srv *HTTPServer) now() time.Time {
	if srv.clock != nil {
		return srv.clock()
	}
	return time.Now()
}
