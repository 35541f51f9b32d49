package handler

import (
	"net/http"

	"loan-enforcement-agent/internal/adapter/http/dto"
	"loan-enforcement-agent/internal/core/ports"
	"loan-enforcement-agent/pkg/response"

	"github.com/gin-gonic/gin"
)

// EnforcementHandler serves the lock state machine endpoints.
type EnforcementHandler struct {
	monitor ports.LoanMonitor
	lockCtl ports.LockController
}

// NewEnforcementHandler creates a new EnforcementHandler.
func NewEnforcementHandler(monitor ports.LoanMonitor, lockCtl ports.LockController) *EnforcementHandler {
	return &EnforcementHandler{monitor: monitor, lockCtl: lockCtl}
}

// GetStatus handles GET /api/v1/enforcement/status. It serves the last
// published value and never blocks on the chain.
func (h *EnforcementHandler) GetStatus(c *gin.Context) {
	response.OK(c, dto.NewStatusResponse(h.monitor.Snapshot()))
}

// ForceCheck handles POST /api/v1/enforcement/check. The check runs
// synchronously; a failed poll still answers 200 with the retained state so
// the AppShell sees the enforcement decision, not the RPC weather.
func (h *EnforcementHandler) ForceCheck(c *gin.Context) {
	update, _ := h.monitor.CheckNow(c.Request.Context())
	response.OK(c, dto.NewStatusResponse(update))
}

// OnForeground handles POST /api/v1/device/foreground, invoked by the
// AppShell on every foreground transition to re-assert an active lock.
func (h *EnforcementHandler) OnForeground(c *gin.Context) {
	if err := h.lockCtl.OnForeground(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
