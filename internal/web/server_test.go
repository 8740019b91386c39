package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/abhisek/passagequiz/internal/export"
	"github.com/abhisek/passagequiz/internal/llm"
	"github.com/abhisek/passagequiz/internal/qtype"
	"github.com/abhisek/passagequiz/internal/questiongen"
	"github.com/abhisek/passagequiz/internal/workspace"
)

type testEnv struct {
	srv    *httptest.Server
	client *http.Client
	mock   *llm.MockProvider
	server *Server
}

func newTestEnv(t *testing.T, responses ...llm.MockResponse) *testEnv {
	t.Helper()
	mock := llm.NewMockProvider(responses...)
	gen := questiongen.New(mock, questiongen.DefaultConfig(), nil)

	loader := export.NewLoader(export.LoaderConfig{
		URL:   "test://font",
		Fetch: func(context.Context, string) ([]byte, error) { return goregular.TTF, nil },
	}, nil)
	renderer := export.NewRenderer(loader, export.Options{OutputDir: t.TempDir(), StagingDir: t.TempDir()}, nil)

	cfg := DefaultConfig()
	cfg.SessionKey = []byte("0123456789abcdef0123456789abcdef")
	s, err := New(cfg, gen, renderer, nil)
	require.NoError(t, err)

	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testEnv{srv: srv, client: &http.Client{Jar: jar}, mock: mock, server: s}
}

func (e *testEnv) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := e.client.Get(e.srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := e.client.PostForm(e.srv.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIndex_EmptyState(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.get(t, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, export.EmptyStateTitle)
	for _, typ := range qtype.All() {
		assert.Contains(t, body, typ.Label())
	}
	assert.NotContains(t, body, "/export.pdf")
}

func TestGenerateThenExport(t *testing.T) {
	env := newTestEnv(t, llm.MockResponse{Content: questiongen.SampleResponse()})

	resp, body := env.postForm(t, "/generate", url.Values{
		"passage": {questiongen.DemoPassage},
		"types":   {string(qtype.MainIdea), string(qtype.WordScramble)},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, export.EmptyStateTitle)
	assert.Contains(t, body, "/export.pdf")
	assert.Contains(t, body, qtype.MainIdea.Label())
	assert.Equal(t, 1, env.mock.CallCount())

	req, ok := env.mock.LastCall()
	require.True(t, ok)
	assert.Contains(t, req.Messages[0].Content, questiongen.DemoPassage)

	resp, err := env.client.Get(env.srv.URL + "/export.pdf")
	require.NoError(t, err)
	defer resp.Body.Close()
	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	disposition := resp.Header.Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, "attachment;"))
	assert.Contains(t, disposition, url.PathEscape(export.FileName))
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestExport_WithoutResults(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.get(t, "/export.pdf")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestGenerate_ValidationMessage(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.postForm(t, "/generate", url.Values{"passage": {"  "}, "types": {string(qtype.Grammar)}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Please enter some text to generate questions.")
	assert.Zero(t, env.mock.CallCount())

	_, body = env.postForm(t, "/generate", url.Values{"passage": {"Some text."}})
	assert.Contains(t, body, "Please select at least one question type.")
	assert.Zero(t, env.mock.CallCount())
}

func TestGenerate_UnknownType(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.postForm(t, "/generate", url.Values{"passage": {"text"}, "types": {"essay"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerate_ProviderFailure(t *testing.T) {
	env := newTestEnv(t, llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	_, body := env.postForm(t, "/generate", url.Values{"passage": {"text"}, "types": {string(qtype.Grammar)}})
	assert.Contains(t, body, workspace.MessageGenerateFailed)
}

func TestDemoAndUpload(t *testing.T) {
	env := newTestEnv(t)

	_, body := env.postForm(t, "/demo", nil)
	assert.Contains(t, body, firstWords(questiongen.DemoPassage))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "chapter1.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("not really an image"))
	require.NoError(t, mw.Close())

	resp, err := env.client.Post(env.srv.URL+"/upload", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	page, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(page), "[chapter1.png 파일 OCR 시뮬레이션]")

	_, body = env.postForm(t, "/reset", nil)
	assert.NotContains(t, body, "chapter1.png")
}

func TestSessionsAreIsolated(t *testing.T) {
	env := newTestEnv(t)
	env.postForm(t, "/demo", nil)

	other := &http.Client{}
	resp, err := other.Get(env.srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), firstWords(questiongen.DemoPassage))
	assert.Equal(t, 2, env.server.workspaces.len())
}

func TestToggleAnswer(t *testing.T) {
	env := newTestEnv(t, llm.MockResponse{Content: questiongen.SampleResponse()})
	_, body := env.postForm(t, "/generate", url.Values{"passage": {"text"}, "types": {string(qtype.MainIdea)}})
	assert.NotContains(t, body, "정답 숨기기")

	_, body = env.postForm(t, "/answers/0", nil)
	assert.Contains(t, body, "정답 숨기기")
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.get(t, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestAPITypes(t *testing.T) {
	env := newTestEnv(t)
	_, body := env.get(t, "/api/types")

	var types []apiType
	require.NoError(t, json.Unmarshal([]byte(body), &types))
	require.Len(t, types, len(qtype.All()))
	assert.Equal(t, qtype.MainIdea, types[0].ID)
	assert.False(t, types[len(types)-1].MultipleChoice)
}

func TestAPIGenerate(t *testing.T) {
	content := json.RawMessage(`[{"type":"main-idea","question":"Q?","options":["a","b","c","d","e"],"answer":"a","explanation":"설명"}]`)
	env := newTestEnv(t,
		llm.MockResponse{Content: content},
		llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)},
		llm.MockResponse{Content: json.RawMessage(`oops`)},
	)

	post := func(body string) (*http.Response, string) {
		resp, err := env.client.Post(env.srv.URL+"/api/generate", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return resp, string(b)
	}

	resp, body := post(`{"passage":"Some passage.","types":["main-idea"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out apiGenerateResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	require.Len(t, out.Questions, 1)
	assert.Equal(t, qtype.MainIdea, out.Questions[0].Type)

	resp, body = post(`{"passage":"Some passage.","types":["main-idea"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"questions":[]}`, body)

	resp, body = post(`{"passage":"Some passage.","types":["main-idea"]}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "PARSE_ERROR")

	resp, body = post(`{"passage":"","types":["main-idea"]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, `"field":"passage"`)

	resp, _ = post(`{"passage":"x","types":["essay"]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = post(`not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Equal(t, 3, env.mock.CallCount())
}

func TestRegistry_EvictsIdle(t *testing.T) {
	now := time.Now()
	r := newRegistry(time.Hour, func() *workspace.Workspace { return workspace.New(nil, nil, nil) })
	r.now = func() time.Time { return now }

	a := r.get("a")
	r.get("b")
	assert.Same(t, a, r.get("a"))

	now = now.Add(2 * time.Hour)
	r.get("a")
	assert.Equal(t, 1, r.len())
}

func firstWords(s string) string {
	fields := strings.Fields(s)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}
