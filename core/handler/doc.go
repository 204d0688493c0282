// Package handler defines the request handling abstractions shared by the
// router, middleware and application handlers.
//
// Handlers never write to the response directly. They return a Response
// function which the router executes; an error returned by that function is
// routed to the configured ErrorHandler:
//
//	func home(ctx *handler.Ctx) handler.Response {
//		return response.HTML("<h1>home</h1>")
//	}
//
// Middleware composes around HandlerFunc values and may wrap the returned
// Response to add headers or observe the rendering result.
package handler
