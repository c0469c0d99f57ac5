package handler

import (
	"time"

	"riderequest/pkg/logger"
	"riderequest/service"
)

type Handler struct {
	svc service.IServiceManager
	log logger.ILogger
	now func() time.Time
}

func New(svc service.IServiceManager, log logger.ILogger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
		now: time.Now,
	}
}
