package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/mattn/go-colorable"
	nats "github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TommyZ-7/list-checker-tauri/config"
	"github.com/TommyZ-7/list-checker-tauri/pkg/api"
	"github.com/TommyZ-7/list-checker-tauri/pkg/livesync"
	"github.com/TommyZ-7/list-checker-tauri/pkg/livesync/eventchannel"
	"github.com/TommyZ-7/list-checker-tauri/pkg/netutil"
	"github.com/TommyZ-7/list-checker-tauri/pkg/registry"
	"github.com/TommyZ-7/list-checker-tauri/pkg/storage/memory"
)

type syncServer struct {
	cfg *config.Config
	nc  *nats.Conn

	quitCh chan bool
	doneCh chan bool
}

func init() {
	formatter := &logrus.TextFormatter{
		FullTimestamp: true,
	}
	logrus.SetFormatter(formatter)

	// Output to stdout instead of the default stderr
	log.SetOutput(colorable.NewColorableStdout())

	// Only log the info severity or above.
	log.SetLevel(log.InfoLevel)
}

func newSyncServer(cfg *config.Config) *syncServer {
	s := &syncServer{
		cfg:    cfg,
		quitCh: make(chan bool),
		doneCh: make(chan bool),
	}

	// The bus is optional; without it room traffic is simply not mirrored
	// for external monitors.
	if cfg.NATSServerURL != "" {
		nc, err := nats.Connect(cfg.NATSServerURL,
			nats.DrainTimeout(10*time.Second))
		if err != nil {
			log.Warnf("server could not connect to NATS at '%s', event mirroring disabled: %v",
				cfg.NATSServerURL, err)
		} else {
			s.nc = nc
		}
	}

	return s
}

func (s *syncServer) Serve() {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(logger())

	// All state is memory resident; a restart starts from scratch.
	store := memory.NewStore()
	reg := registry.NewRegistry(store)

	// Create the sync core
	ctrl := eventchannel.NewController(s.nc, store)
	defer ctrl.Close()

	// Register API and realtime endpoints
	api.NewHandler(s.nc, reg).RegisterRoutes(e)
	livesync.NewHandler(ctrl).RegisterRoutes(e)

	host := s.cfg.BindHost
	if host == "" {
		if ip, err := netutil.LocalIP(); err == nil {
			host = ip.String()
		} else {
			log.Warnf("server could not discover the local address: %v", err)
		}
	}

	go func() {
		log.WithFields(log.Fields{
			"host": host,
			"port": s.cfg.BindPort,
		}).Info("Starting server")

		if err := e.Start(fmt.Sprintf("%s:%d", host, s.cfg.BindPort)); err != nil {
			e.Logger.Info("Shutting down the server")
		}
	}()

	// Wait until receiving the quit signal
	<-s.quitCh
	log.Info("Shutdown signal received")

	// Create a 10 second timeout context
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the echo web server
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Error(err)
	}

	// We've done!
	s.doneCh <- true
}

func (s *syncServer) Shutdown() {
	if s.nc != nil {
		s.nc.Drain()
	}

	// Send the quit signal to the server.Serve() routine
	s.quitCh <- true

	// Wait up to 10 seconds
	select {
	case <-s.doneCh:
		log.Info("Shutdown server successful")
	case <-time.After(10 * time.Second):
		log.Error("Shutdown server failed")
	}
}

// logger returns a middleware that logs HTTP requests.
func logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			var err error
			if err = next(c); err != nil {
				c.Error(err)
			}
			stop := time.Now()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}
			reqSizeStr := req.Header.Get(echo.HeaderContentLength)
			if reqSizeStr == "" {
				reqSizeStr = "0"
			}
			reqSize, err := strconv.ParseInt(reqSizeStr, 10, 0)
			if err != nil {
				reqSize = -1
			}
			errMsg := ""
			if err != nil {
				errMsg = err.Error()
			}

			log.WithFields(log.Fields{
				"timestamp":     stop.Format(time.RFC3339),
				"id":            id,
				"remote_ip":     c.RealIP(),
				"host":          req.Host,
				"method":        req.Method,
				"uri":           req.RequestURI,
				"protocol":      req.Proto,
				"user_agent":    req.UserAgent(),
				"status":        res.Status,
				"status_text":   http.StatusText(res.Status),
				"referer":       req.Referer(),
				"error":         errMsg,
				"bytes_in":      reqSize,
				"bytes_out":     res.Size,
				"latency":       stop.Sub(start).Nanoseconds(),
				"latency_human": stop.Sub(start).String(),
			}).Infof("%s %s %s %d %s", req.Method, req.RequestURI, req.Proto,
				res.Status, strconv.FormatInt(res.Size, 10))

			return err
		}
	}
}

// RunServe returns the cobra run function for the serve command.
func RunServe(cfg *config.Config) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		s := newSyncServer(cfg)

		go s.Serve()

		// Wait for interrupt signal to gracefully shutdown the server
		quitCh := make(chan os.Signal, 1)
		signal.Notify(quitCh, os.Interrupt)
		<-quitCh

		// Shutdown the server
		s.Shutdown()
	}
}
