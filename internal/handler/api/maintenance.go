package api

import (
	"errors"
	"net/http"

	resdto "repaircoin/internal/handler/dto/response"
	"repaircoin/internal/handler/httperr"
	"repaircoin/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	cleanupCommands commands.CleanupCommands
}

func NewMaintenanceHandler(cleanupCommands commands.CleanupCommands) *MaintenanceHandler {
	return &MaintenanceHandler{
		cleanupCommands: cleanupCommands,
	}
}

// @Summary Run cleanup
// @Description Delete old webhook logs and archive old transactions with the configured retention windows
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CleanupReportResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/cleanup [post]
func (h *MaintenanceHandler) RunCleanup(c *gin.Context) {
	report, err := h.cleanupCommands.Run(c.Request.Context())
	if err != nil {
		h.writeCleanupError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCleanupReport(report))
}

// @Summary Run emergency cleanup
// @Description Reclaim space immediately with aggressive retention windows
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CleanupReportResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/cleanup/emergency [post]
func (h *MaintenanceHandler) RunEmergencyCleanup(c *gin.Context) {
	report, err := h.cleanupCommands.EmergencyRun(c.Request.Context())
	if err != nil {
		h.writeCleanupError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCleanupReport(report))
}

func (h *MaintenanceHandler) writeCleanupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCleanupAlreadyRunning):
		httperr.AbortWithError(c, http.StatusConflict, err, "A cleanup run is already in progress")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
