package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func staticFetch(calls *atomic.Int32) FetchFunc {
	return func(context.Context, string) ([]byte, error) {
		calls.Add(1)
		return goregular.TTF, nil
	}
}

func TestLoader_LoadsOnce(t *testing.T) {
	var calls atomic.Int32
	l := NewLoader(LoaderConfig{URL: "test://font", Fetch: staticFetch(&calls)}, nil)
	assert.Equal(t, StateUninitialized, l.State())

	r1, err := l.Load(context.Background())
	require.NoError(t, err)
	r2, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, r1, r2)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, StateLoaded, l.State())
	assert.Equal(t, len(goregular.TTF), r1.Size)
}

func TestLoader_ConcurrentCallersShareOneFetch(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(context.Context, string) ([]byte, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return goregular.TTF, nil
	}
	l := NewLoader(LoaderConfig{URL: "test://font", Fetch: fetch}, nil)

	var wg sync.WaitGroup
	results := make([]*Resource, 2)
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = l.Load(context.Background())
	}()
	<-started
	assert.Equal(t, StateLoading, l.State())

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = l.Load(context.Background())
	}()

	// Give the second caller time to join the pending load.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Same(t, results[0], results[1])
	assert.Equal(t, int32(1), calls.Load(), "one download for overlapping loads")
}

func TestLoader_LateCallerReusesLoadedResource(t *testing.T) {
	var calls atomic.Int32
	l := NewLoader(LoaderConfig{URL: "test://font", Fetch: staticFetch(&calls)}, nil)

	first, err := l.Load(context.Background())
	require.NoError(t, err)

	// A caller that saw the load still pending starts its own flight after
	// the first one has finished.
	l.mu.Lock()
	l.state = StateLoading
	l.mu.Unlock()

	second, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, StateLoaded, l.State())
}

func TestLoader_FailureAllowsRetry(t *testing.T) {
	var calls atomic.Int32
	fetch := func(context.Context, string) ([]byte, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("connection reset")
		}
		return goregular.TTF, nil
	}
	l := NewLoader(LoaderConfig{URL: "test://font", Fetch: fetch}, nil)

	_, err := l.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLibraryLoad)
	assert.Equal(t, StateUninitialized, l.State())

	_, err = l.Load(context.Background())
	require.NoError(t, err)
	_, err = l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLoader_WaiterCancellationDoesNotAbortLoad(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context, _ string) ([]byte, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		select {
		case <-release:
			return goregular.TTF, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	l := NewLoader(LoaderConfig{URL: "test://font", Fetch: fetch}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := l.Load(ctx)
		errCh <- err
	}()
	<-started
	cancel()

	err := <-errCh
	assert.ErrorIs(t, err, ErrLibraryLoad)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	_, err = l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLoader_ChecksumPin(t *testing.T) {
	sum := sha256.Sum256(goregular.TTF)
	var calls atomic.Int32

	good := NewLoader(LoaderConfig{URL: "test://font", SHA256: hex.EncodeToString(sum[:]), Fetch: staticFetch(&calls)}, nil)
	_, err := good.Load(context.Background())
	require.NoError(t, err)

	bad := NewLoader(LoaderConfig{URL: "test://font", SHA256: "deadbeef", Fetch: staticFetch(&calls)}, nil)
	_, err = bad.Load(context.Background())
	assert.ErrorIs(t, err, ErrLibraryLoad)
	assert.Contains(t, err.Error(), "checksum mismatch")
}

func TestLoader_NotAFont(t *testing.T) {
	fetch := func(context.Context, string) ([]byte, error) { return []byte("<html>404</html>"), nil }
	l := NewLoader(LoaderConfig{URL: "test://font", Fetch: fetch}, nil)
	_, err := l.Load(context.Background())
	assert.ErrorIs(t, err, ErrLibraryLoad)
}

func TestHTTPFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/font.ttf" {
			w.Write(goregular.TTF)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	fetch := HTTPFetch(srv.Client())

	data, err := fetch(context.Background(), srv.URL+"/font.ttf")
	require.NoError(t, err)
	assert.Equal(t, goregular.TTF, data)

	_, err = fetch(context.Background(), srv.URL+"/missing.ttf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestHTTPFetch_NilClientBoundedByContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := HTTPFetch(nil)(ctx, srv.URL+"/font.ttf")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoaderConfigFromEnv(t *testing.T) {
	t.Setenv("PASSAGEQUIZ_FONT_URL", "/usr/share/fonts/custom.ttf")
	t.Setenv("PASSAGEQUIZ_FONT_SHA256", "abc")
	cfg := LoaderConfigFromEnv()
	assert.Equal(t, "/usr/share/fonts/custom.ttf", cfg.URL)
	assert.Equal(t, "abc", cfg.SHA256)
}
