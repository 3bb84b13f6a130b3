package ui

import (
	"net/http"
	"strconv"

	"gogrubbs/app"
	"gogrubbs/domain/core"
	"gogrubbs/domain/grubbs"
	"gogrubbs/internal"
	"gogrubbs/ports"

	"github.com/gin-gonic/gin"
)

// Server exposes the Grubbs computations over HTTP
type Server struct {
	router   *gin.Engine
	service  *app.DetectionService
	calc     *grubbs.Calculator
	reports  ports.ReportRepositoryPort
	defaults grubbs.DetectionParams
	logger   *internal.Logger
}

// NewServer creates the HTTP server and registers routes. The report
// repository may be nil; the report routes then answer 503.
func NewServer(service *app.DetectionService, calc *grubbs.Calculator, reports ports.ReportRepositoryPort, defaults grubbs.DetectionParams, logger *internal.Logger, mode string) *Server {
	if mode != "" {
		gin.SetMode(mode)
	}
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}

	s := &Server{
		router:   gin.New(),
		service:  service,
		calc:     calc,
		reports:  reports,
		defaults: defaults,
		logger:   logger,
	}
	s.router.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

// Router returns the underlying engine, used by tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server on the given address
func (s *Server) Run(addr string) error {
	s.logger.Info("http server listening on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/statistic", s.handleStatistic)
		v1.POST("/critical", s.handleCritical)
		v1.POST("/detect", s.handleDetect)
		v1.GET("/reports", s.handleListReports)
		v1.GET("/reports/:id", s.handleGetReport)
	}
}

type statisticRequest struct {
	Sample  []float64 `json:"sample" binding:"required"`
	Variant string    `json:"variant"`
}

func (s *Server) handleStatistic(c *gin.Context) {
	var req statisticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	variant, err := grubbs.ParseVariant(req.Variant)
	if err != nil {
		s.renderError(c, err)
		return
	}

	statistic, err := s.calc.Statistic(req.Sample, variant)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"statistic":   statistic,
		"variant":     variant,
		"sample_size": len(req.Sample),
	})
}

type criticalRequest struct {
	Alpha float64 `json:"alpha" binding:"required"`
	N     int     `json:"n" binding:"required"`
	Tails int     `json:"tails"`
}

func (s *Server) handleCritical(c *gin.Context) {
	var req criticalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tails := grubbs.Tails(req.Tails)
	if req.Tails == 0 {
		tails = s.defaults.Tails
	}

	critical, err := s.calc.CriticalValue(req.Alpha, req.N, tails)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"critical_value": critical,
		"alpha":          req.Alpha,
		"n":              req.N,
		"tails":          tails,
	})
}

type detectRequest struct {
	Sample  []float64 `json:"sample" binding:"required"`
	Variant string    `json:"variant"`
	Alpha   float64   `json:"alpha"`
	Tails   int       `json:"tails"`
}

func (s *Server) handleDetect(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := s.defaults
	if req.Alpha != 0 {
		params.Alpha = req.Alpha
	}
	if req.Tails != 0 {
		params.Tails = grubbs.Tails(req.Tails)
	}
	if req.Variant != "" {
		variant, err := grubbs.ParseVariant(req.Variant)
		if err != nil {
			s.renderError(c, err)
			return
		}
		params.Variant = variant
	}

	report, err := s.service.Detect(c.Request.Context(), req.Sample, params)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) handleGetReport(c *gin.Context) {
	if s.reports == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "report persistence not configured"})
		return
	}

	report, err := s.reports.GetByID(c.Request.Context(), core.ID(c.Param("id")))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleListReports(c *gin.Context) {
	if s.reports == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "report persistence not configured"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	reports, err := s.reports.ListRecent(c.Request.Context(), limit)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

// renderError maps domain errors to HTTP status codes
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case core.IsInvalidParameter(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case core.IsInvalidSample(err), core.IsDegenerateSample(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case core.IsReportNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
