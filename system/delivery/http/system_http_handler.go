package http

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"runtime"
	"runtime/debug"
	"strings"

	"go.uber.org/zap"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/labstack/echo/v4"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mvc"
	"github.com/charisma-labs/srs/log"
)

type SystemHandler struct {
	logger   log.Logger
	config   domain.Config
	PUsecase mvc.PoolsUsecase
}

const (
	versionPlaceholder    = "version="
	whiteSpacePlaceholder = " "
)

// NewSystemHandler will initialize the system resources endpoint
func NewSystemHandler(e *echo.Echo, config domain.Config, logger log.Logger, pu mvc.PoolsUsecase) {
	handler := &SystemHandler{
		logger:   logger,
		config:   config,
		PUsecase: pu,
	}

	// if debug mode, enable additional profiles that are too intensive
	// for production.
	if !config.LoggerIsProduction {
		runtime.SetMutexProfileFraction(2)
		runtime.SetBlockProfileRate(2)
	}

	e.GET("/debug/pprof/*", echo.WrapHandler(http.DefaultServeMux))
	e.GET("/debug/pprof/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	e.GET("/debug/pprof/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	e.GET("/debug/pprof/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	e.GET("/debug/pprof/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))

	e.GET("/healthcheck", handler.GetHealthStatus)
	e.GET("/config", handler.GetConfig)
	e.GET("/version", handler.GetVersion)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// GetConfig returns the config for the swap routing service
func (h *SystemHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.config)
}

func (h *SystemHandler) GetVersion(c echo.Context) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read build info")
	}

	for _, setting := range buildInfo.Settings {
		if setting.Key == "-ldflags" {
			version, err := extractVersion(setting.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to extract version information: %v", err))
			}

			return c.JSON(http.StatusOK, version)
		}
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "failed to find version information")
}

// extractVersion extracts the version string from the ldflags
func extractVersion(ldFlagsValueStr string) (string, error) {
	index := strings.Index(ldFlagsValueStr, versionPlaceholder)
	if index == -1 {
		return "", fmt.Errorf("no version string found")
	}

	substring := ldFlagsValueStr[index+len(versionPlaceholder):]

	index = strings.Index(substring, whiteSpacePlaceholder)
	if index == -1 {
		// version was the last flag
		return substring, nil
	}

	return substring[:index], nil
}

// GetHealthStatus checks that the chain node is reachable and that a
// routing graph snapshot has been built.
func (h *SystemHandler) GetHealthStatus(c echo.Context) error {
	resp, err := http.Get(h.config.ChainNodeEndpoint + "/v2/info")
	if err != nil || resp == nil {
		h.logger.Error("error checking chain node status", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Error connecting to the chain node")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.logger.Error("chain node returned unexpected status", zap.Int("status", resp.StatusCode))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Error connecting to the chain node")
	}

	graph := h.PUsecase.GetGraph()
	if graph.NumPools() == 0 {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Routing graph is empty, waiting for the first registry refresh")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"chain_node_status": "running",
		"num_pools":         fmt.Sprint(graph.NumPools()),
		"num_tokens":        fmt.Sprint(graph.NumTokens()),
	})
}
