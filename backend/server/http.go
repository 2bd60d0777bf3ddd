package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StartHTTPServer serves e in the background. Serve errors other than a clean
// shutdown are delivered on the returned channel.
func StartHTTPServer(host string, port int, e *echo.Echo) <-chan error {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	errc := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()
	return errc
}

func Shutdown(ctx context.Context, e *echo.Echo) error {
	return e.Shutdown(ctx)
}
