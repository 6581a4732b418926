package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"distsn/domain"
	"distsn/helpers"
	"distsn/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	instancePath = "/api/v1/instance"
	timelinePath = "/api/v1/timelines/public?local=true&limit=40"

	// minTimelineLength is the number of local posts a host must return to be measured.
	minTimelineLength = 40
	maxTimelineSpan   = 365 * 24 * time.Hour
)

var (
	ErrShortTimeline = errors.New("timeline too short to measure")
	ErrTimelineSpan  = errors.New("timeline span out of range")
)

// InstanceCollector measures known hosts through their Mastodon-compatible public API and
// saves one descriptor per measured host to the instance store.
type InstanceCollector struct {
	client  *http.Client
	store   interfaces.InstanceStore
	logger  log.Logger
	baseURL func(host string) string
	now     func() time.Time
}

// CollectorOption configures an InstanceCollector.
type CollectorOption func(*InstanceCollector)

// WithHostBaseURL replaces the default "https://<host>" base URL of every request.
func WithHostBaseURL(baseURL func(host string) string) CollectorOption {
	return func(c *InstanceCollector) {
		c.baseURL = baseURL
	}
}

// WithClock sets the time source used as the end of the measured span.
func WithClock(now func() time.Time) CollectorOption {
	return func(c *InstanceCollector) {
		c.now = now
	}
}

// NewInstanceCollector creates a collector. Panics on nil dependencies.
func NewInstanceCollector(client *http.Client, store interfaces.InstanceStore, logger log.Logger, opts ...CollectorOption) *InstanceCollector {
	c := &InstanceCollector{
		client:  helpers.NilPanic(client, "adapters.collector.go: http client is required"),
		store:   helpers.NilPanic(store, "adapters.collector.go: instance store is required"),
		logger:  log.WithPrefix(helpers.NilPanic(logger, "adapters.collector.go: logger is required"), "component", "InstanceCollector"),
		baseURL: func(host string) string { return "https://" + host },
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect measures hosts one after another and saves each measured host with ttlMs.
// A host that cannot be measured or saved is logged and skipped. Returns the number of saved hosts.
func (c *InstanceCollector) Collect(ctx context.Context, hosts []string, ttlMs int) int {
	saved := 0
	for _, host := range hosts {
		if ctx.Err() != nil {
			break
		}

		instance, err := c.Measure(ctx, host)
		if err != nil {
			level.Warn(c.logger).Log("msg", "Host not measured", "domain", host, "err", err)
			continue
		}
		if err := c.store.SaveInstance(ctx, instance, ttlMs); err != nil {
			level.Error(c.logger).Log("msg", "Measured host not saved", "domain", host, "err", err)
			continue
		}
		saved++
	}

	level.Info(c.logger).Log("msg", "Collection finished", "hosts", len(hosts), "saved", saved)
	return saved
}

// Measure reads the local public timeline of host and derives its speed in posts per second:
// the post count over the span from the oldest post to now (or to the newest post when it is later).
// Title and thumbnail come from the instance endpoint; when that fails the host is still measured without them.
func (c *InstanceCollector) Measure(ctx context.Context, host string) (domain.InstanceDescriptor, error) {
	start := c.now()

	var toots []timelineToot
	if err := c.getJSON(ctx, host, timelinePath, &toots); err != nil {
		return domain.InstanceDescriptor{}, fmt.Errorf("measure failed to read timeline, err: %w", err)
	}
	speed, err := timelineSpeed(toots, start)
	if err != nil {
		return domain.InstanceDescriptor{}, fmt.Errorf("measure failed to compute speed, err: %w", err)
	}

	instance := domain.InstanceDescriptor{Domain: host, Speed: speed}

	var info instanceInfo
	if err := c.getJSON(ctx, host, instancePath, &info); err != nil {
		level.Debug(c.logger).Log("msg", "Instance info not read", "domain", host, "err", err)
		return instance, nil
	}
	instance.Title = info.Title
	if err := domain.ValidateThumbnail(info.Thumbnail); err == nil {
		instance.Thumbnail = info.Thumbnail
	}
	return instance, nil
}

type timelineToot struct {
	CreatedAt time.Time `json:"created_at"`
}

type instanceInfo struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

func timelineSpeed(toots []timelineToot, now time.Time) (float64, error) {
	if len(toots) < minTimelineLength {
		return 0, fmt.Errorf("%w: %d posts", ErrShortTimeline, len(toots))
	}

	end := toots[0].CreatedAt
	if now.After(end) {
		end = now
	}
	span := end.Sub(toots[len(toots)-1].CreatedAt)
	if span <= time.Second || span >= maxTimelineSpan {
		return 0, fmt.Errorf("%w: %s", ErrTimelineSpan, span)
	}
	return float64(len(toots)) / span.Seconds(), nil
}

func (c *InstanceCollector) getJSON(ctx context.Context, host, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL(host)+path, nil)
	if err != nil {
		return fmt.Errorf("request build failed, err: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed, err: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("response decode failed, err: %w", err)
	}
	return nil
}
