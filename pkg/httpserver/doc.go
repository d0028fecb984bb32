// Package httpserver runs the storefront HTTP handler with graceful shutdown
// and exposes liveness/readiness probes.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server exited", logger.Error(err))
//	}
package httpserver
