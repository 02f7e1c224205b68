package server

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/renderer"
	"github.com/gin-gonic/gin"
)

// Health reports that the service is up.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "alloc",
	})
}

// Simulate handles POST /api/v1/simulate.
func (s *Server) Simulate(c *gin.Context) {
	var req ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scenario, err := req.Scenario()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := s.memoize(cacheKey("simulate", scenario), func() ([]byte, error) {
		return json.Marshal(allocation.Simulate(s.table, scenario))
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// Compare handles POST /api/v1/compare.
func (s *Server) Compare(c *gin.Context) {
	var req ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scenario, err := req.Scenario()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := s.memoize(cacheKey("compare", scenario), func() ([]byte, error) {
		return json.Marshal(allocation.Compare(s.table, scenario, allocation.DefaultBenchmarks...))
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// Returns handles GET /api/v1/returns.
func (s *Server) Returns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"returns": slices.Collect(s.table.Rows())})
}

// Chart handles GET /api/v1/chart.svg.
func (s *Server) Chart(c *gin.Context) {
	var req ScenarioRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scenario, err := req.Scenario()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := s.memoize(cacheKey("chart", scenario), func() ([]byte, error) {
		cmp := allocation.Compare(s.table, scenario, allocation.DefaultBenchmarks...)
		return renderer.LineChart(cmp, renderer.ChartOptions{Format: renderer.SVG, Currency: s.currency})
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", data)
}
