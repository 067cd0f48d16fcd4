package logo

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"paddock/internal/eventbus"
)

type fakeFetcher struct {
	data  map[string][]byte
	calls atomic.Int32
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.calls.Add(1)
	data, ok := f.data[url]
	if !ok {
		return nil, errors.New("404")
	}
	return data, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 65, B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRows(t *testing.T) {
	require.Equal(t, 1, Rows(2))
	require.Equal(t, 2, Rows(8))
	require.Equal(t, 4, Rows(16))
}

func TestRenderHasThumbnailShape(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(pngBytes(t, 150, 100)))
	require.NoError(t, err)

	out := Render(img, 8)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		require.Equal(t, 8, lipgloss.Width(line))
	}
	require.Contains(t, out, "▀")
}

func TestRenderLeavesTransparentPixelsBlank(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	out := Render(img, 8)
	require.Equal(t, Blank(8), out)
}

func TestLoadRejectsNonImage(t *testing.T) {
	f := &fakeFetcher{data: map[string][]byte{"u": []byte("<html>not found</html>")}}
	l := &Loader{fetcher: f, seen: map[string]bool{}}

	_, err := l.Load(context.Background(), "u", 8)
	require.ErrorIs(t, err, ErrNotImage)
}

func TestLoadReportsFetchError(t *testing.T) {
	l := &Loader{fetcher: &fakeFetcher{}, seen: map[string]bool{}}
	_, err := l.Load(context.Background(), "missing", 8)
	require.EqualError(t, err, "404")
}

func TestLoaderAnswersRequestsOnce(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	f := &fakeFetcher{data: map[string][]byte{"http://api.test/static/teams/rb.png": pngBytes(t, 30, 20)}}
	NewLoader(context.Background(), bus, f)

	loaded := make(chan eventbus.LogoLoadedEvent, 2)
	bus.Subscribe(eventbus.EventLogoLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(eventbus.LogoLoadedEvent)
	})
	failed := make(chan eventbus.LogoFailedEvent, 2)
	bus.Subscribe(eventbus.EventLogoFailed, func(e eventbus.DomainEvent) {
		failed <- e.(eventbus.LogoFailedEvent)
	})

	bus.Publish(eventbus.LogoRequestedEvent{URL: "http://api.test/static/teams/rb.png", Width: 8})

	select {
	case ev := <-loaded:
		require.Equal(t, "http://api.test/static/teams/rb.png", ev.URL)
		require.NotEmpty(t, ev.Thumbnail)
	case <-time.After(2 * time.Second):
		t.Fatal("logo was not loaded")
	}

	bus.Publish(eventbus.LogoRequestedEvent{URL: "http://api.test/static/teams/rb.png", Width: 8})
	bus.Publish(eventbus.LogoRequestedEvent{URL: "http://api.test/static/teams/none.png", Width: 8})

	select {
	case ev := <-failed:
		require.Equal(t, "http://api.test/static/teams/none.png", ev.URL)
	case <-time.After(2 * time.Second):
		t.Fatal("failure was not published")
	}
	require.Equal(t, int32(2), f.calls.Load())
}
