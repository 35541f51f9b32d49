package handler

import (
	"net/http"

	"loan-enforcement-agent/internal/adapter/http/middleware"
	"loan-enforcement-agent/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LoanSvc        ports.LoanService
	Monitor        ports.LoanMonitor
	LockCtl        ports.LockController
	TokenSvc       ports.TokenService // nil = auth disabled (local trusted AppShell)
	HealthCheckers []ports.HealthChecker
	MetricsReg     *prometheus.Registry // nil = /metrics disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10)) // small local API, 64 KiB is plenty

	// Health check (deep, verifies chain RPC and stores)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.MetricsReg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.MetricsReg, promhttp.HandlerOpts{})))
	}

	// Session auth; disabled when no token service is wired.
	auth := func(c *gin.Context) { c.Next() }
	if deps.TokenSvc != nil {
		auth = middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	}

	v1 := r.Group("/api/v1", auth)

	loanHandler := NewLoanHandler(deps.LoanSvc, deps.Monitor)
	loans := v1.Group("/loans")
	{
		loans.POST("", loanHandler.RequestLoan)
		loans.POST("/repayment", loanHandler.PayBackLoan)
	}

	wallet := v1.Group("/wallet")
	{
		wallet.GET("", loanHandler.GetWallet)
		wallet.POST("/switch-network", loanHandler.SwitchNetwork)
	}

	enfHandler := NewEnforcementHandler(deps.Monitor, deps.LockCtl)
	enforcement := v1.Group("/enforcement")
	{
		enforcement.GET("/status", enfHandler.GetStatus)
		enforcement.POST("/check", enfHandler.ForceCheck)
	}

	v1.POST("/device/foreground", enfHandler.OnForeground)

	return r
}

// HealthCheck verifies every wired dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
