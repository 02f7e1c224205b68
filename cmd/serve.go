package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/allocation/server"
	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr      string
	cacheSize int
	release   bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serves the calculator JSON API" }
func (*serveCmd) Usage() string {
	return `alloc serve [-addr <host:port>] [-cache <n>] [-release]

  Serves the JSON API used by the website calculator:
    GET  /health
    POST /api/v1/simulate
    POST /api/v1/compare
    GET  /api/v1/returns
    GET  /api/v1/chart.svg
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	addr := os.Getenv(EnvAddr)
	if addr == "" {
		addr = ":8080"
	}
	f.StringVar(&c.addr, "addr", addr, "Address to listen on")
	f.IntVar(&c.cacheSize, "cache", server.DefaultCacheSize, "Number of responses kept in memory")
	f.BoolVar(&c.release, "release", false, "Run gin in release mode")
}

func (c *serveCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := DecodeReturns()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading returns: %v\n", err)
		return subcommands.ExitFailure
	}
	settings, err := DecodeSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if c.release {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := server.New(table, server.Config{Currency: Currency(settings), CacheSize: c.cacheSize})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	log.Printf("Server starting on %s", c.addr)
	if err := r.Run(c.addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
