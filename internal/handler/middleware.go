package handler

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

const (
	loggerKey            = "logger"
	internalErrorMessage = "An unexpected error occurred. Please try again later."
)

var knownRoutes = map[string]struct{}{
	RouteCalculate: {},
	RouteBreakdown: {},
	RouteHealth:    {},
	RouteMetrics:   {},
}

// withLogging attaches a request-scoped logger to ctx and logs the outcome
// of every request once next returns.
func (h *Handler) withLogging(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		reqLogger := h.logger.With().
			Str("method", string(ctx.Method())).
			Str("path", string(ctx.Path())).
			Str("remote_ip", ctx.RemoteIP().String()).
			Logger()
		ctx.SetUserValue(loggerKey, &reqLogger)

		next(ctx)

		elapsed := time.Since(start)
		status := ctx.Response.StatusCode()
		h.metrics.ObserveRequest(routeLabel(ctx), string(ctx.Method()), status, elapsed)

		event := reqLogger.Info()
		if status >= fasthttp.StatusInternalServerError {
			event = reqLogger.Error()
		}
		event.Int("status", status).Dur("duration", elapsed).Msg("request completed")
	}
}

// withRecovery turns a panic in next into a 500 response.
func (h *Handler) withRecovery(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		defer func() {
			if rec := recover(); rec != nil {
				requestLogger(ctx, h.logger).Error().
					Str("panic", fmt.Sprint(rec)).
					Msg("unhandled panic while serving request")
				ctx.Response.Reset()
				writeError(ctx, fasthttp.StatusInternalServerError, internalErrorMessage)
			}
		}()
		next(ctx)
	}
}

func requestLogger(ctx *fasthttp.RequestCtx, fallback zerolog.Logger) *zerolog.Logger {
	if l, ok := ctx.UserValue(loggerKey).(*zerolog.Logger); ok {
		return l
	}
	return &fallback
}

func routeLabel(ctx *fasthttp.RequestCtx) string {
	path := string(ctx.Path())
	if _, ok := knownRoutes[path]; ok {
		return path
	}
	return "unmatched"
}
