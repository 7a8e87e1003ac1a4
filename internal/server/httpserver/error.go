package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/salesboard/backend/internal/pkg/apierr"
	"github.com/salesboard/backend/internal/pkg/flog"
)

func handleCustomError(ctx *fiber.Ctx, e *apierr.APIError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	return ctx.Status(e.StatusCode).JSON(e.Body())
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var apiErr *apierr.APIError
	if errors.As(err, &apiErr) {
		return handleCustomError(ctx, apiErr)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return handleCustomError(ctx, apierr.ErrNotFound)
		case fiber.StatusInternalServerError:
		default:
			return handleCustomError(ctx, apierr.New(fiberErr.Code, "UNKNOWN_ERROR", fiberErr.Message))
		}
	}

	// anything else failed inside the data pipeline. The cause is logged and
	// reported but never shown to the client.
	re := apierr.ErrInternalError

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		if id, ok := flog.IDFromFiberCtx(ctx); ok {
			hub.Scope().SetTag("request_id", id.String())
		}
		hub.CaptureException(err)
	}

	return ctx.Status(re.StatusCode).JSON(re.Body())
}
