// Package server serves the calculator as a JSON API for the website widget.
package server

import (
	"fmt"
	"log"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/returns"
	"github.com/gin-gonic/gin"
	"github.com/maypok86/otter"
)

// Config holds the server settings.
type Config struct {
	Currency  string // for chart subtitles
	CacheSize int    // number of memoized responses
}

// DefaultCacheSize is used when Config.CacheSize is not set.
const DefaultCacheSize = 1024

// Server answers simulation requests on a fixed return table.
type Server struct {
	table    *returns.Table
	currency string
	cache    otter.Cache[string, []byte]
}

// New returns the gin engine serving the API on table.
func New(table *returns.Table, cfg Config) (*gin.Engine, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.Currency == "" {
		cfg.Currency = allocation.DefaultSettings.Currency
	}
	cache, err := otter.MustBuilder[string, []byte](cfg.CacheSize).
		Cost(func(key string, value []byte) uint32 { return 1 }).
		Build()
	if err != nil {
		return nil, fmt.Errorf("cannot create response cache: %w", err)
	}
	s := &Server{table: table, currency: cfg.Currency, cache: cache}

	r := gin.Default()
	r.Use(cors)

	r.GET("/health", s.Health)
	api := r.Group("/api/v1")
	{
		api.GET("/health", s.Health)
		api.POST("/simulate", s.Simulate)
		api.POST("/compare", s.Compare)
		api.GET("/returns", s.Returns)
		api.GET("/chart.svg", s.Chart)
	}
	first, last := table.Span()
	log.Printf("serving returns from %d to %d", first, last)
	return r, nil
}

// cors lets the static website call the API from another origin.
func cors(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")

	if c.Request.Method == "OPTIONS" {
		c.AbortWithStatus(204)
		return
	}
	c.Next()
}

// memoize returns the cached value for key, or computes and caches it.
func (s *Server) memoize(key string, compute func() ([]byte, error)) ([]byte, error) {
	if v, ok := s.cache.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, v)
	return v, nil
}
