package web

import (
	"embed"
	"io/fs"

	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/core/response"
)

//go:embed assets
var embedded embed.FS

var assets = func() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}()

func (a *App) asset(ctx *Context) handler.Response {
	return response.FileFS(assets, ctx.Param("file"))
}
