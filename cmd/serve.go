package cmd

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/voxctl/voxctl/internal/events"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing voxctl tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes command
resolution and execution as tools, so AI agents can drive the desktop
without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  voxctl serve
  voxctl serve --transport streamable-http --port 8080
  voxctl serve --metrics-addr :9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().String("metrics-addr", "", "Expose Prometheus metrics on this address (empty to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	var sinks []events.Sink
	if metricsAddr != "" {
		registry := prometheus.NewRegistry()
		sinks = append(sinks, events.NewMetricsSink(registry))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "metrics server: %v\n", err)
			}
		}()
	}

	a, err := newApp(sinks...)
	if err != nil {
		return err
	}
	defer a.close()

	srv := newMCPServer(a)
	return srv.serve(MCPConfig{Transport: transport, Port: port})
}
