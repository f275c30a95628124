/*
example runs a toy web server showing the ways qparams hands query params to handlers:

(1) middleware.Queries extracting params for a route, strictly or partially;
(2) req.Extract called directly from a handler;
(3) req.Parser binding params into a validated struct.

Configuration is read from the environment, or a .env file next to the binary:

	HOST         defaults to localhost
	PORT         defaults to 8080
	ENVIRONMENT  defaults to DEVELOPMENT
	LOG_LEVEL    defaults to INFO
	LOG_COLOR    defaults to true, or false in PRODUCTION
	SENTRY_DSN   optional
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/qparams"
	"github.com/xy-planning-network/qparams/http/resp"
	"github.com/xy-planning-network/qparams/logger"
)

const (
	DefaultHost = "localhost"
	DefaultPort = 8080
)

func main() {
	l := logger.New()
	d := resp.NewResponder(resp.WithLogger(l))

	srv := &http.Server{
		Addr: net.JoinHostPort(
			qparams.EnvVarOrString("HOST", DefaultHost),
			strconv.Itoa(qparams.EnvVarOrInt("PORT", DefaultPort)),
		),
		Handler:           newHandler(l, d),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		l.Info(fmt.Sprintf("running web server at %s", srv.Addr), nil)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			l.Error("could not listen", &logger.LogContext{Error: err})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	l.Info("shutting down web server", nil)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("failed shutting down web server", &logger.LogContext{Error: err})
	}
}
