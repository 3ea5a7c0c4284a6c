// Package sentinel is a scanner engine backed by a remote socket.io feed.
// It emits a scan request for the subject and converts the first matching
// result event into envelope facts. The remote scanner owns the actual
// detection logic; this engine is the transport adapter that makes such a
// scanner participate in consensus like any other engine.
package sentinel

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/ctxlog"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
)

// Config holds the feed connection settings.
type Config struct {
	// URL is the socket.io endpoint, including any path.
	URL string
	// Namespace is the socket.io namespace to join. Default "/".
	Namespace string
	// ScanEvent is the event emitted to request a scan. Default "scan".
	ScanEvent string
	// ResultEvent is the event carrying scan results. Default "scan_result".
	ResultEvent string
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool
}

// Engine implements legend.Engine.
type Engine struct {
	cfg Config
}

// New builds the engine from its configuration params. Recognized params:
// "url" (required), "namespace", "scan_event", "result_event",
// "insecure_skip_verify".
func New(params map[string]any) (*Engine, error) {
	cfg := Config{
		Namespace:   "/",
		ScanEvent:   "scan",
		ResultEvent: "scan_result",
	}
	rawURL, ok := params["url"].(string)
	if !ok || rawURL == "" {
		return nil, fmt.Errorf("sentinel engine requires a non-empty \"url\" param")
	}
	cfg.URL = rawURL
	if v, ok := params["namespace"].(string); ok && v != "" {
		cfg.Namespace = v
	}
	if v, ok := params["scan_event"].(string); ok && v != "" {
		cfg.ScanEvent = v
	}
	if v, ok := params["result_event"].(string); ok && v != "" {
		cfg.ResultEvent = v
	}
	if v, ok := params["insecure_skip_verify"].(bool); ok {
		cfg.InsecureSkipVerify = v
	}
	return &Engine{cfg: cfg}, nil
}

// Name implements legend.Engine.
func (e *Engine) Name() string { return "Sentinel Scanner" }

// Reliability implements legend.Engine.
func (e *Engine) Reliability() legend.ReliabilityLevel { return legend.Variable }

// Type implements legend.Engine.
func (e *Engine) Type() legend.EngineType { return legend.Scanner }

// opResult passes the feed's response through the done channel.
type opResult struct {
	facts map[string]any
	err   error
}

// Run implements legend.Engine. The per-engine deadline arrives through ctx,
// so the only local concern is turning socket events into a single result.
func (e *Engine) Run(ctx context.Context, req legend.Request, sink legend.ProgressSink) (*legend.Envelope, error) {
	logger := ctxlog.FromContext(ctx).With("legend", e.Name(), "url", e.cfg.URL, "symbol", req.Symbol)
	logger.Debug("Handler started")
	defer logger.Debug("Handler finished")

	var isConnected atomic.Bool
	done := make(chan opResult, 1)

	parsedURL, err := url.Parse(e.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if e.cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(e.cfg.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	report(sink, e.Name(), "connect", 10, "Connecting to scanner feed")

	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Info("Successfully connected", "namespace", e.cfg.Namespace, "sid", io.Id())
		report(sink, e.Name(), "scan", 50, "Requesting scan")
		io.Emit(e.cfg.ScanEvent, map[string]any{
			"symbol":    req.Symbol,
			"timeframe": req.Timeframe,
			"as_of":     req.AsOf.UTC().Format(time.RFC3339),
		})
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			if err, ok := errs[0].(error); ok {
				done <- opResult{err: err}
				return
			}
		}
		done <- opResult{err: fmt.Errorf("scanner feed connection error")}
	})

	io.On(types.EventName(e.cfg.ResultEvent), func(data ...any) {
		if len(data) == 0 {
			done <- opResult{err: fmt.Errorf("scanner feed sent empty %q event", e.cfg.ResultEvent)}
			return
		}
		facts, ok := data[0].(map[string]any)
		if !ok {
			done <- opResult{err: fmt.Errorf("scanner feed sent malformed %q payload: %T", e.cfg.ResultEvent, data[0])}
			return
		}
		done <- opResult{facts: facts}
	})

	io.Connect()

	select {
	case <-ctx.Done():
		if isConnected.Load() {
			return nil, fmt.Errorf("waiting for event %q: %w", e.cfg.ResultEvent, ctx.Err())
		}
		return nil, fmt.Errorf("waiting for initial connection: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		report(sink, e.Name(), "score", 100, "Scan complete")
		return &legend.Envelope{
			Legend:    e.Name(),
			Timeframe: req.Timeframe,
			At:        req.AsOf,
			Facts:     res.facts,
			Quality: legend.QualityMeta{
				FreshnessSec: legend.Float(0),
			},
		}, nil
	}
}

func report(sink legend.ProgressSink, name, stage string, percent float64, note string) {
	if sink == nil {
		return
	}
	sink.Report(legend.Progress{Legend: name, Stage: stage, Percent: percent, Note: note})
}
