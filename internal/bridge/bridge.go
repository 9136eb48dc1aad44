package bridge

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/axisdefaults/internal/ctxlog"
	"github.com/vk/axisdefaults/internal/layout"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultConnectTimeout bounds the wait for the initial connection.
const DefaultConnectTimeout = 15 * time.Second

// Config describes the plot server to connect to.
type Config struct {
	URL                string
	Namespace          string
	ConnectTimeout     time.Duration
	InsecureSkipVerify bool
	// Layout is applied to every request.
	Layout layout.Options
}

// Run connects to the server and answers relayout events until ctx is
// cancelled or the server drops the connection.
func Run(ctx context.Context, cfg Config) error {
	logger := ctxlog.FromContext(ctx).With("component", "bridge", "url", cfg.URL, "namespace", cfg.Namespace)

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("failed to parse URL: %q needs a scheme and host", cfg.URL)
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	connectChan := make(chan error, 1)
	closed := make(chan string, 1)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Successfully connected", "sid", io.Id())
		offer(connectChan, nil)
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		logger.Debug("EVENT HANDLER: 'connect_error' event fired", "error", err)
		offer(connectChan, err)
	})
	io.On(types.EventName("disconnect"), func(reason ...any) {
		var why string
		if len(reason) > 0 {
			why = fmt.Sprint(reason[0])
		}
		offer(closed, why)
	})
	io.On(types.EventName(EventRelayout), func(data ...any) {
		var payload any
		if len(data) > 0 {
			payload = data[0]
		}
		event, reply := Handle(ctx, payload, cfg.Layout)
		logger.Debug("Relayout handled", "event", event, "request_id", reply["request_id"], "axis", reply["axis"])
		io.Emit(event, reply)
	})

	logger.Debug("Initiating connection...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("timed out after %v waiting for socket.io connection", timeout)
	}

	logger.Info("Waiting for relayout events", "event", EventRelayout)
	select {
	case <-ctx.Done():
		logger.Info("Bridge stopping", "reason", ctx.Err())
		return nil
	case why := <-closed:
		return fmt.Errorf("socket.io connection closed: %s", why)
	}
}

// offer sends v on ch unless ch is full. Socket callbacks keep firing after
// Run has stopped reading, so they must never block.
func offer[T any](ch chan T, v T) bool {
	select {
	case ch <- v:
		return true
	default:
		return false
	}
}
