package cmd

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/fnmcp/fnmcp/mcp"
	mcpconfig "github.com/fnmcp/fnmcp/mcp/config"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises an mcp.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		var cfg *mcpconfig.Config
		if cfgPath != "" {
			var err error
			cfg, err = mcpconfig.Load(ctx, cfgPath)
			if err != nil {
				svcErr = err
				return
			}
			// Pretty-print location if the user asked for it via env for debug.
			if debug := os.Getenv("FNMCP_DEBUG_CONFIG"); debug == "1" {
				_ = json.NewEncoder(os.Stderr).Encode(cfg)
			}
		}

		logger, err := zap.NewProduction()
		if err != nil {
			svcErr = err
			return
		}

		svcInst, svcErr = mcp.New(ctx, mcp.WithConfig(cfg), mcp.WithLogger(logger))
		if svcErr == nil {
			svcErr = svcInst.Start(ctx)
		}
	})
	return svcInst, svcErr
}
