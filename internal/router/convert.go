package router

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/shunting-yard/internal/apperr"
	"github.com/DjordjeVuckovic/shunting-yard/internal/domain"
	"github.com/DjordjeVuckovic/shunting-yard/internal/dto"
	"github.com/DjordjeVuckovic/shunting-yard/internal/parser"
	"github.com/DjordjeVuckovic/shunting-yard/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxExpressionLength = 4096

type ConvertRouter struct {
	e       *echo.Echo
	store   storage.Store
	lenient *parser.Parser
	strict  *parser.Parser
	// defaultStrict applies when a request does not set ?strict
	defaultStrict bool
}

type ConvertRouterOption func(*ConvertRouter)

// WithDefaultStrict makes strict validation the default for requests.
func WithDefaultStrict(strict bool) ConvertRouterOption {
	return func(r *ConvertRouter) {
		r.defaultStrict = strict
	}
}

func NewConvertRouter(e *echo.Echo, store storage.Store, opts ...ConvertRouterOption) *ConvertRouter {
	r := &ConvertRouter{
		e:       e,
		store:   store,
		lenient: parser.New(),
		strict:  parser.New(parser.WithStrict(true)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ConvertRouter) Bind() {
	r.e.GET("/convert", r.convertQueryHandler)
	r.e.POST("/convert", r.convertBodyHandler)
	r.e.GET("/conversions", r.listHandler)
	r.e.GET("/conversions/:id", r.getHandler)
}

// convertQueryHandler godoc
// @Summary Convert an expression
// @Description Tokenizes an infix arithmetic expression and returns its postfix form
// @Tags convert
// @Produce json
// @Param expression query string true "Infix expression, e.g. (2+3)*4"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /convert [get]
func (r *ConvertRouter) convertQueryHandler(c echo.Context) error {
	resp, err := r.convert(c, c.QueryParam("expression"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// convertBodyHandler godoc
// @Summary Convert an expression
// @Description Tokenizes an infix arithmetic expression and returns its postfix form
// @Tags convert
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Expression to convert"
// @Success 201 {object} dto.ConversionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /convert [post]
func (r *ConvertRouter) convertBodyHandler(c echo.Context) error {
	var req dto.ConvertRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	resp, err := r.convert(c, req.Expression)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// listHandler godoc
// @Summary List conversions
// @Description Lists the most recent conversions, newest first
// @Tags conversions
// @Produce json
// @Param limit query int false "Maximum number of conversions (1-100)"
// @Success 200 {array} dto.ConversionResponse
// @Router /conversions [get]
func (r *ConvertRouter) listHandler(c echo.Context) error {
	limit := storage.DefaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return apperr.NewValidation("limit must be a positive integer")
		}
		limit = n
	}

	conversions, err := r.store.List(c.Request().Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list conversions: %w", err)
	}

	out := make([]dto.ConversionResponse, len(conversions))
	for i, conv := range conversions {
		out[i] = dto.FromConversion(conv)
	}
	return c.JSON(http.StatusOK, out)
}

// getHandler godoc
// @Summary Get a conversion
// @Description Fetches a stored conversion by id
// @Tags conversions
// @Produce json
// @Param id path string true "Conversion id"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /conversions/{id} [get]
func (r *ConvertRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidation("id must be a valid uuid")
	}

	conv, err := r.store.Get(c.Request().Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get conversion: %w", err)
	}
	return c.JSON(http.StatusOK, dto.FromConversion(*conv))
}

func (r *ConvertRouter) convert(c echo.Context, expression string) (*dto.ConversionResponse, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, apperr.NewValidation("expression is required")
	}
	if len(expression) > maxExpressionLength {
		return nil, apperr.NewValidation(fmt.Sprintf("expression exceeds %d bytes", maxExpressionLength))
	}

	p, err := r.parserFor(c)
	if err != nil {
		return nil, err
	}

	infix, err := p.Tokenize(expression)
	if err != nil {
		return nil, err
	}
	postfix, err := p.Convert(infix)
	if err != nil {
		return nil, err
	}

	conv := domain.NewConversion(expression, infix, postfix, p.Strict())
	if _, err := r.store.Save(c.Request().Context(), conv); err != nil {
		return nil, fmt.Errorf("failed to save conversion: %w", err)
	}

	resp := dto.FromConversion(conv)
	return &resp, nil
}

func (r *ConvertRouter) parserFor(c echo.Context) (*parser.Parser, error) {
	strict := r.defaultStrict
	if raw := c.QueryParam("strict"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, apperr.NewValidation("strict must be a boolean")
		}
		strict = v
	}
	if strict {
		return r.strict, nil
	}
	return r.lenient, nil
}
