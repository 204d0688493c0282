package response_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newslens/core/response"
)

type ctxKey struct{}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("renders_with_request_context", func(t *testing.T) {
		t.Parallel()

		component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			v, _ := ctx.Value(ctxKey{}).(string)
			_, err := io.WriteString(w, "<p>"+v+"</p>")
			return err
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "hello"))
		w := httptest.NewRecorder()

		require.NoError(t, response.Templ(component)(w, req))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<p>hello</p>", w.Body.String())
	})

	t.Run("failed_render_writes_nothing", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return boom
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		err := response.TemplWithStatus(component, http.StatusNotFound)(w, req)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, w.Body.String())
		assert.Empty(t, w.Header().Get("Content-Type"))
	})

	t.Run("nil_component", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, response.Templ(nil))
	})
}
