// Package middleware provides the HTTP middlewares used by the web front end.
//
//   - RequestID assigns an X-Request-ID to every request.
//   - ClientIP resolves the client address behind proxies.
//   - Logging writes one structured line per request.
//   - SecurityHeaders adds nosniff, frame and referrer policies.
//   - CORS answers preflight requests and adds CORS headers.
//   - I18n negotiates the response language from Accept-Language.
//   - BodyLimit rejects request bodies over a size limit as bad requests.
//   - RequireSession resolves the session cookie into a user identity and
//     rejects requests without one.
//
// All middlewares are generic over the handler context:
//
//	r := router.New[*handler.Ctx]()
//	r.Use(
//		middleware.RequestID[*handler.Ctx](),
//		middleware.ClientIP[*handler.Ctx](),
//		middleware.LoggingWithLogger[*handler.Ctx](log),
//		middleware.SecurityHeaders[*handler.Ctx](),
//		middleware.CORS[*handler.Ctx](),
//	)
//
//	r.Group(func(r router.Router[*handler.Ctx]) {
//		r.Use(middleware.RequireSession[*handler.Ctx](transport, guard))
//		r.Get("/home", home)
//	})
package middleware
