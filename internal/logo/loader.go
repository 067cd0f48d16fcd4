package logo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"paddock/internal/eventbus"
)

// ErrNotImage is returned when the fetched bytes are not an image
var ErrNotImage = errors.New("not an image")

// Fetcher downloads raw bytes
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Loader fetches images and renders them as terminal thumbnails. It answers
// LogoRequested events with LogoLoaded or LogoFailed.
type Loader struct {
	ctx     context.Context
	bus     eventbus.EventBus
	fetcher Fetcher

	mu   sync.Mutex
	seen map[string]bool
}

// NewLoader creates a loader and subscribes it to logo requests
func NewLoader(ctx context.Context, bus eventbus.EventBus, fetcher Fetcher) *Loader {
	l := &Loader{
		ctx:     ctx,
		bus:     bus,
		fetcher: fetcher,
		seen:    make(map[string]bool),
	}

	bus.Subscribe(eventbus.EventLogoRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LogoRequestedEvent); ok {
			l.handleRequest(event)
		}
	})

	return l
}

// handleRequest loads each URL at most once per process
func (l *Loader) handleRequest(event eventbus.LogoRequestedEvent) {
	l.mu.Lock()
	if l.seen[event.URL] {
		l.mu.Unlock()
		return
	}
	l.seen[event.URL] = true
	l.mu.Unlock()

	thumb, err := l.Load(l.ctx, event.URL, event.Width)
	if err != nil {
		l.bus.Publish(eventbus.LogoFailedEvent{URL: event.URL, Err: err})
		return
	}
	l.bus.Publish(eventbus.LogoLoadedEvent{URL: event.URL, Thumbnail: thumb})
}

// Load fetches url and renders it width cells wide
func (l *Loader) Load(ctx context.Context, url string, width int) (string, error) {
	data, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%s: %w (%s)", url, ErrNotImage, mt.String())
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%s: decode %s: %w", url, mt.String(), err)
	}
	log.Printf("Loaded %s logo %s (%dx%d)", format, url, img.Bounds().Dx(), img.Bounds().Dy())

	return Render(img, width), nil
}
