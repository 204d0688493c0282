// Package server wraps http.Server with graceful shutdown and env-driven
// configuration.
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, app))
//	return g.Wait()
//
// Run serves until its context is canceled and then drains in-flight
// requests for at most the shutdown timeout. TLS is enabled when both
// SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE are set.
package server
