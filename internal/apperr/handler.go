package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/shunting-yard/internal/parser"
	"github.com/DjordjeVuckovic/shunting-yard/internal/storage"
	"github.com/DjordjeVuckovic/shunting-yard/internal/token"
	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		var le *token.LexError
		if errors.As(err, &le) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": le.Error(), "title": "lexical error", "reason": "unrecognized_char"})
			return
		}

		var pe *parser.Error
		if errors.As(err, &pe) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": pe.Error(), "title": "structural error", "reason": string(pe.Reason)})
			return
		}

		var tve *token.ValidationError
		if errors.As(err, &tve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": tve.Error(), "title": "structural error", "reason": "invalid_infix"})
			return
		}

		if errors.Is(err, parser.ErrMalformedPostfix) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error(), "title": "structural error", "reason": "invalid_postfix"})
			return
		}

		if errors.Is(err, storage.ErrNotFound) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
