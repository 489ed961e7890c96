package http

import (
	"github.com/gin-gonic/gin"

	"task-prioritizer/internal/prioritize"
	pkgLog "task-prioritizer/pkg/log"
)

// Handler is the public interface for the prioritize HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	Suggest(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc prioritize.UseCase
}

// New creates a new HTTP handler for the prioritize domain.
func New(l pkgLog.Logger, uc prioritize.UseCase) *handler {
	registerValidations()
	return &handler{
		l:  l,
		uc: uc,
	}
}
