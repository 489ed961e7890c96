package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Routes are public; mw is applied to the whole group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	tasks := rg.Group("/tasks", mw...)
	{
		tasks.POST("/analyze", h.Analyze)
		tasks.POST("/analyze/", h.Analyze)
		tasks.GET("/suggest", h.Suggest)
		tasks.GET("/suggest/", h.Suggest)
	}
}
