// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts, health-check handlers, and
// structured logging via slog.
//
// The core type is Server. Run blocks until the context is cancelled or an
// interrupt/TERM signal is received, then shuts the server down using
// http.Server.Shutdown with a configurable deadline. Construction is done
// through New or NewFromConfig together with Option helpers such as WithAddr
// and WithLogger. Listen errors are wrapped with ErrStart and shutdown errors
// with ErrShutdown so they can be inspected with errors.Is.
//
// # Usage
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", "err", err)
//	}
package httpserver
