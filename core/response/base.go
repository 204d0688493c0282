package response

import (
	"net/http"

	"github.com/dmitrymomot/newslens/core/handler"
)

// Render executes the given response with the provided context.
// If the response returns an error, an HTTP 500 is written instead.
func Render(ctx handler.Context, resp handler.Response) {
	if err := resp(ctx.ResponseWriter(), ctx.Request()); err != nil {
		http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
	}
}

// String creates a text/plain response with 200 OK status.
func String(content string) handler.Response {
	return StringWithStatus(content, http.StatusOK)
}

// StringWithStatus creates a text/plain response with custom status code.
func StringWithStatus(content string, status int) handler.Response {
	return write([]byte(content), "text/plain; charset=utf-8", status)
}

// HTML creates a text/html response with 200 OK status.
func HTML(content string) handler.Response {
	return HTMLWithStatus(content, http.StatusOK)
}

// HTMLWithStatus creates a text/html response with custom status code.
func HTMLWithStatus(content string, status int) handler.Response {
	return write([]byte(content), "text/html; charset=utf-8", status)
}

// NoContent creates a 204 No Content response.
func NoContent() handler.Response {
	return Status(http.StatusNoContent)
}

// Status creates an empty response with the specified status code.
func Status(code int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if code == 0 {
			w.WriteHeader(http.StatusOK)
			return nil
		}
		w.WriteHeader(code)
		return nil
	}
}

func write(content []byte, contentType string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", contentType)
		code := status
		if code == 0 {
			code = http.StatusOK
		}
		w.WriteHeader(code)
		if len(content) > 0 {
			_, err := w.Write(content)
			return err
		}
		return nil
	}
}
