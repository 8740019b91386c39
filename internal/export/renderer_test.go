package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/abhisek/passagequiz/internal/questiongen"
)

func newTestRenderer(t *testing.T, outDir string) (*Renderer, string) {
	t.Helper()
	var calls atomic.Int32
	staging := t.TempDir()
	loader := NewLoader(LoaderConfig{URL: "test://font", Fetch: staticFetch(&calls)}, nil)
	return NewRenderer(loader, Options{OutputDir: outDir, StagingDir: staging}, nil), staging
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "staging directory should be cleaned up")
}

func TestExport_WritesPDF(t *testing.T) {
	out := t.TempDir()
	r, staging := newTestRenderer(t, out)

	path, err := r.Export(context.Background(), questiongen.SampleQuestions())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, FileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF")
	assertEmptyDir(t, staging)
}

func TestStream_WritesPDF(t *testing.T) {
	r, staging := newTestRenderer(t, t.TempDir())

	var buf bytes.Buffer
	require.NoError(t, r.Stream(context.Background(), questiongen.SampleQuestions()[:2], &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assertEmptyDir(t, staging)
}

func TestExport_OverlappingExportsShareOneFetch(t *testing.T) {
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
	loader := NewLoader(LoaderConfig{URL: "test://font", Fetch: fetch}, nil)
	out := t.TempDir()
	r := NewRenderer(loader, Options{OutputDir: out, StagingDir: t.TempDir()}, nil)

	var (
		wg        sync.WaitGroup
		exportErr error
		streamErr error
		buf       bytes.Buffer
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, exportErr = r.Export(context.Background(), questiongen.SampleQuestions())
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		streamErr = r.Stream(context.Background(), questiongen.SampleQuestions()[:3], &buf)
	}()

	// Give the second export time to join the pending load.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, exportErr)
	require.NoError(t, streamErr)
	assert.Equal(t, int32(1), calls.Load(), "one download for overlapping exports")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.FileExists(t, filepath.Join(out, FileName))
}

func TestExport_NothingToExport(t *testing.T) {
	r, _ := newTestRenderer(t, t.TempDir())
	_, err := r.Export(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.ErrorIs(t, err, ErrRender)
}

func TestExport_RenderFailureRemovesStaging(t *testing.T) {
	// A regular file where the output directory should be makes the final
	// write fail after pages were staged.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	r, staging := newTestRenderer(t, blocker)
	_, err := r.Export(context.Background(), questiongen.SampleQuestions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRender)
	assert.False(t, errors.Is(err, ErrLibraryLoad))
	assert.Equal(t, MessageRender, UserMessage(err))
	assertEmptyDir(t, staging)
}

func TestExport_LoadFailure(t *testing.T) {
	staging := t.TempDir()
	loader := NewLoader(LoaderConfig{URL: "test://font", Fetch: func(context.Context, string) ([]byte, error) {
		return nil, errors.New("offline")
	}}, nil)
	r := NewRenderer(loader, Options{OutputDir: t.TempDir(), StagingDir: staging}, nil)

	_, err := r.Export(context.Background(), questiongen.SampleQuestions())
	assert.ErrorIs(t, err, ErrLibraryLoad)
	assert.Equal(t, MessageLibraryLoad, UserMessage(err))
	assertEmptyDir(t, staging)
}

func TestExport_CancelledMidRender(t *testing.T) {
	r, staging := newTestRenderer(t, t.TempDir())
	_, err := r.loader.Load(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Export(ctx, questiongen.SampleQuestions())
	assert.ErrorIs(t, err, ErrRender)
	assert.ErrorIs(t, err, context.Canceled)
	assertEmptyDir(t, staging)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, MessageLibraryLoad, UserMessage(ErrLibraryLoad))
	assert.Equal(t, MessageRender, UserMessage(ErrRender))
	assert.Equal(t, MessageRender, UserMessage(errors.New("anything else")))
}

func TestLayout_Paginates(t *testing.T) {
	res := &Resource{}
	var err error
	res.Font, err = parseTestFont()
	require.NoError(t, err)

	short := layoutDocument(res, NewDocument(questiongen.SampleQuestions()[:1], nil).Printable())
	assert.Len(t, short, 1)

	var many []questiongen.GeneratedQuestion
	for i := 0; i < 6; i++ {
		many = append(many, questiongen.SampleQuestions()...)
	}
	pages := layoutDocument(res, NewDocument(many, nil).Printable())
	require.Greater(t, len(pages), 1)
	for i, p := range pages {
		require.NotEmpty(t, p.items, "page %d", i)
		for _, it := range p.items {
			assert.LessOrEqual(t, it.y, float64(PageHeightPx), "item below page bottom on page %d", i)
		}
	}
}

func TestLayout_HidesAnswersUnlessShown(t *testing.T) {
	res := &Resource{}
	var err error
	res.Font, err = parseTestFont()
	require.NoError(t, err)

	doc := NewDocument(questiongen.SampleQuestions()[:1], nil)
	hasAnswer := func(pages []page) bool {
		for _, p := range pages {
			for _, it := range p.items {
				if it.kind == itemText && strings.HasPrefix(it.text, AnswerPrefix) {
					return true
				}
			}
		}
		return false
	}
	assert.False(t, hasAnswer(layoutDocument(res, doc)))
	assert.True(t, hasAnswer(layoutDocument(res, doc.Printable())))
}

func parseTestFont() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
}

func TestPageHeightPx(t *testing.T) {
	// A4 content area at 794px wide, rounded down.
	assert.Equal(t, 1168, PageHeightPx)
}
