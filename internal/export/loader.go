package export

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/sync/singleflight"

	"github.com/abhisek/passagequiz/internal/logger"
)

// State is the lifecycle of the rendering resource.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "uninitialized"
	}
}

// Resource is the loaded rendering resource: a parsed TrueType font.
type Resource struct {
	Font *truetype.Font
	Size int // bytes fetched
}

// Face returns a new face at size pixels. Faces are not safe for
// concurrent use, so every render creates its own.
func (r *Resource) Face(size float64) font.Face {
	return truetype.NewFace(r.Font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	// URL locates the font. Default: DefaultFontURL.
	URL string
	// SHA256 optionally pins the fetched bytes (hex digest).
	SHA256 string
	// Fetch retrieves the bytes. Default: DefaultFetch().
	Fetch FetchFunc
}

// LoaderConfigFromEnv reads PASSAGEQUIZ_FONT_URL and PASSAGEQUIZ_FONT_SHA256.
func LoaderConfigFromEnv() LoaderConfig {
	return LoaderConfig{
		URL:    os.Getenv("PASSAGEQUIZ_FONT_URL"),
		SHA256: os.Getenv("PASSAGEQUIZ_FONT_SHA256"),
	}
}

// Loader acquires the resource at most once. Concurrent callers share one
// in-flight fetch. A failed fetch leaves the loader retryable, while a
// loaded resource is kept for the life of the process.
type Loader struct {
	url   string
	sum   string
	fetch FetchFunc
	log   *logger.Logger

	group singleflight.Group

	mu    sync.Mutex
	state State
	res   *Resource
}

// NewLoader creates a Loader. log may be nil.
func NewLoader(cfg LoaderConfig, log *logger.Logger) *Loader {
	if cfg.URL == "" {
		cfg.URL = DefaultFontURL
	}
	if cfg.Fetch == nil {
		cfg.Fetch = DefaultFetch()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{url: cfg.URL, sum: cfg.SHA256, fetch: cfg.Fetch, log: log}
}

// State reports the current lifecycle state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Load returns the resource, fetching it if needed. The shared fetch is
// detached from ctx so one caller giving up does not fail the others; ctx
// only bounds how long this caller waits.
func (l *Loader) Load(ctx context.Context) (*Resource, error) {
	l.mu.Lock()
	if l.state == StateLoaded {
		res := l.res
		l.mu.Unlock()
		return res, nil
	}
	l.state = StateLoading
	l.mu.Unlock()

	ch := l.group.DoChan("resource", func() (any, error) {
		// A flight that finished after the check above has already stored
		// the resource.
		l.mu.Lock()
		if l.state == StateLoaded {
			res := l.res
			l.mu.Unlock()
			return res, nil
		}
		l.mu.Unlock()
		return l.load(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrLibraryLoad, ctx.Err())
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*Resource), nil
	}
}

func (l *Loader) load(ctx context.Context) (*Resource, error) {
	l.log.Info("fetching rendering resource", "url", l.url)

	res, err := l.acquire(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state = StateUninitialized
		l.log.Warn("rendering resource unavailable", "url", l.url, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrLibraryLoad, err)
	}
	l.res = res
	l.state = StateLoaded
	l.log.Info("rendering resource loaded", "bytes", res.Size)
	return res, nil
}

func (l *Loader) acquire(ctx context.Context) (*Resource, error) {
	data, err := l.fetch(ctx, l.url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if l.sum != "" {
		if err := verifyChecksum(data, l.sum); err != nil {
			return nil, err
		}
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Resource{Font: f, Size: len(data)}, nil
}
