package helper

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"k8s.io/klog/v2"

	"github.com/bilaad-labs/estate-pulse/internal"
	"github.com/bilaad-labs/estate-pulse/internal/handler"
	"github.com/bilaad-labs/estate-pulse/pkg/config"
	"github.com/bilaad-labs/estate-pulse/pkg/cronjob"
)

type ServerRunner struct {
	backendConfig *config.Config
}

func NewServerRunner(backendConfig *config.Config) *ServerRunner {
	return &ServerRunner{
		backendConfig: backendConfig,
	}
}

var (
	readHeaderTimeout = 10 * time.Second
	cancelTimeout     = 10 * time.Second
)

// StartReminder starts the daily meeting reminder sweep.
func (sr *ServerRunner) StartReminder(registerConfig *handler.RegisterConfig) *cronjob.ReminderManager {
	spec := sr.backendConfig.MeetingReminderSpec
	if spec == "" {
		spec = "0 8 * * *"
	}
	reminder := cronjob.NewReminderManager(registerConfig.Store, registerConfig.Notifier)
	if err := reminder.Start(spec); err != nil {
		klog.Fatalf("start reminder cron: %s", err)
	}
	return reminder
}

// StartServer runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully.
func (sr *ServerRunner) StartServer(registerConfig *handler.RegisterConfig) {
	klog.Info("starting server")
	backend := internal.Register(registerConfig)

	// reference: https://gin-gonic.com/en/docs/examples/graceful-restart-or-stop
	srv := &http.Server{
		Addr:              sr.backendConfig.ServerAddr,
		Handler:           backend,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			klog.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	klog.Info("Shutdown Gin Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), cancelTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		klog.Info("Gin Server Shutdown:", err)
	}
	klog.Info("Gin Server exiting")
}
