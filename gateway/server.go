package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until it fails or a termination signal
// arrives, then drains in-flight requests before returning.
func (gw *Gateway) Start() error {
	addr := fmt.Sprintf("%s:%d", gw.conf.ListenAddress, gw.conf.ListenPort)

	srv := &http.Server{
		Addr:         addr,
		Handler:      gw.Handler(),
		ReadTimeout:  time.Duration(gw.conf.HTTPServerOptions.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(gw.conf.HTTPServerOptions.WriteTimeout) * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		mainLog.Infof("Listening on %s", addr)
		errs <- srv.ListenAndServe()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case s := <-sig:
		mainLog.Infof("Received %s, shutting down", s)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
