package telemetry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// placeholderMarker identifies an unconfigured endpoint left at its
// template value. Beacons are then logged locally and never sent.
const placeholderMarker = "YOUR_ANALYTICS_ENDPOINT"

const sendTimeout = 5 * time.Second

// Config holds the reporter settings.
type Config struct {
	// Endpoint is the analytics sink URL. Empty or placeholder values
	// disable network sends entirely.
	Endpoint string

	// IPLookupURL is an ipify-style service returning {"ip": "..."}.
	// Empty disables the lookup; the ipAddress field stays "unknown".
	IPLookupURL string

	// UserAgent and Referrer are ambient context sent with every beacon.
	UserAgent string
	Referrer  string
}

// Reporter emits best-effort GET beacons to an analytics sink. Every
// send is fire-and-forget: the caller never waits, failures are only
// logged, and delivery order is not guaranteed.
type Reporter struct {
	cfg    Config
	client *http.Client
	log    *zap.Logger

	ip atomic.Value // string

	// wg tracks in-flight sends so tests and shutdown can drain them.
	wg sync.WaitGroup
}

// New creates a Reporter and kicks off the asynchronous caller-IP
// lookup. The reporter is usable immediately; the ipAddress field
// reads "unknown" until the lookup completes, or forever if it fails.
func New(cfg Config, log *zap.Logger) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Reporter{
		cfg:    cfg,
		client: &http.Client{Timeout: sendTimeout},
		log:    log,
	}
	r.ip.Store("unknown")
	if cfg.IPLookupURL != "" {
		r.wg.Add(1)
		go r.resolveIP()
	}
	return r
}

// Wait blocks until all in-flight sends have completed.
func (r *Reporter) Wait() {
	r.wg.Wait()
}

func (r *Reporter) configured() bool {
	return r.cfg.Endpoint != "" && !strings.Contains(r.cfg.Endpoint, placeholderMarker)
}

// send builds the beacon URL and dispatches it on its own goroutine.
// The response body and status are never interpreted.
func (r *Reporter) send(event string, fields map[string]string) {
	params := url.Values{}
	params.Set("event", event)
	params.Set("userAgent", r.cfg.UserAgent)
	params.Set("referrer", r.cfg.Referrer)
	params.Set("timestamp", time.Now().UTC().Format(time.RFC3339))
	params.Set("ipAddress", r.ip.Load().(string))
	for k, v := range fields {
		params.Set(k, v)
	}

	if !r.configured() {
		r.log.Info("telemetry not configured, event logged only",
			zap.String("event", event), zap.Any("fields", fields))
		return
	}

	beacon := r.cfg.Endpoint + "?" + params.Encode()
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, beacon, nil)
		if err != nil {
			r.log.Warn("telemetry beacon build failed", zap.String("event", event), zap.Error(err))
			return
		}
		resp, err := r.client.Do(req)
		if err != nil {
			r.log.Warn("telemetry beacon send failed", zap.String("event", event), zap.Error(err))
			return
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		r.log.Debug("telemetry beacon sent",
			zap.String("event", event), zap.Int("status", resp.StatusCode))
	}()
}

// resolveIP fetches the caller's public IP once, best-effort.
func (r *Reporter) resolveIP() {
	defer r.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.IPLookupURL, nil)
	if err != nil {
		r.log.Debug("ip lookup request build failed", zap.Error(err))
		return
	}
	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Debug("ip lookup failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	var payload struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		r.log.Debug("ip lookup decode failed", zap.Error(err))
		return
	}
	if payload.IP != "" {
		r.ip.Store(payload.IP)
	}
}
