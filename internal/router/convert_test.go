package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/shunting-yard/internal/apperr"
	"github.com/DjordjeVuckovic/shunting-yard/internal/domain"
	"github.com/DjordjeVuckovic/shunting-yard/internal/dto"
	"github.com/DjordjeVuckovic/shunting-yard/internal/storage/in_mem"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...ConvertRouterOption) (*echo.Echo, *in_mem.InMemStorer) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	store := in_mem.NewInMemStorer()
	NewConvertRouter(e, store, opts...).Bind()
	return e, store
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func getConvert(e *echo.Echo, expression string, extra ...string) *httptest.ResponseRecorder {
	q := url.Values{"expression": {expression}}
	for i := 0; i+1 < len(extra); i += 2 {
		q.Set(extra[i], extra[i+1])
	}
	return do(e, httptest.NewRequest(http.MethodGet, "/convert?"+q.Encode(), nil))
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestConvert_Get(t *testing.T) {
	e, store := setup(t)

	rec := getConvert(e, "2+3*4")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[dto.ConversionResponse](t, rec)
	assert.Equal(t, "2+3*4", resp.Expression)
	assert.Equal(t, "2 3 4 * +", resp.RPN)
	assert.Len(t, resp.Infix, 5)
	assert.False(t, resp.Strict)

	stored, err := store.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "2 3 4 * +", stored.RPN())
}

func TestConvert_Post(t *testing.T) {
	e, _ := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(`{"expression":"-5*4"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := do(e, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode[dto.ConversionResponse](t, rec)
	assert.Equal(t, "5 - 4 *", resp.RPN)
	assert.Equal(t, "UNARY", resp.Postfix[1].Role)
	assert.Equal(t, "RIGHT", resp.Postfix[1].Association)
}

func TestConvert_Errors(t *testing.T) {
	e, _ := setup(t)

	tests := []struct {
		name       string
		expression string
		extra      []string
		reason     string
	}{
		{name: "lexical", expression: "1@2", reason: "unrecognized_char"},
		{name: "unmatched left", expression: "(2+3", reason: "unmatched_left_paren"},
		{name: "unmatched right", expression: "2+3)", reason: "unmatched_right_paren"},
		{name: "strict infix", expression: "2 3", extra: []string{"strict", "true"}, reason: "invalid_infix"},
		{name: "missing", expression: "  ", reason: ""},
		{name: "bad strict flag", expression: "1", extra: []string{"strict", "maybe"}, reason: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := getConvert(e, tt.expression, tt.extra...)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			body := decode[dto.ErrorResponse](t, rec)
			assert.Equal(t, tt.reason, body.Reason)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestConvert_DefaultStrict(t *testing.T) {
	e, _ := setup(t, WithDefaultStrict(true))

	rec := getConvert(e, "2 3")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = getConvert(e, "2 3", "strict", "false")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2 3", decode[dto.ConversionResponse](t, rec).RPN)
}

func TestConvert_PostBadBody(t *testing.T) {
	e, _ := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(`{"expression":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := do(e, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConversions_Get(t *testing.T) {
	e, store := setup(t)

	id, err := store.Save(context.Background(), domain.Conversion{
		ID:         uuid.New(),
		Expression: "1+2",
		Postfix:    []domain.Token{{Lexeme: "1"}, {Lexeme: "2"}, {Lexeme: "+"}},
	})
	require.NoError(t, err)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/conversions/"+id.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1 2 +", decode[dto.ConversionResponse](t, rec).RPN)

	rec = do(e, httptest.NewRequest(http.MethodGet, "/conversions/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, httptest.NewRequest(http.MethodGet, "/conversions/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConversions_List(t *testing.T) {
	e, _ := setup(t)

	for _, expr := range []string{"1", "2", "3"} {
		require.Equal(t, http.StatusOK, getConvert(e, expr).Code)
	}

	rec := do(e, httptest.NewRequest(http.MethodGet, "/conversions?limit=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]dto.ConversionResponse](t, rec), 2)

	rec = do(e, httptest.NewRequest(http.MethodGet, "/conversions?limit=0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type failingStore struct {
	*in_mem.InMemStorer
}

func (failingStore) Save(context.Context, domain.Conversion) (uuid.UUID, error) {
	return uuid.Nil, errors.New("disk full")
}

func TestConvert_StoreFailure(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewConvertRouter(e, failingStore{in_mem.NewInMemStorer()}).Bind()

	rec := getConvert(e, "1+1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
