package web

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/passagequiz/internal/export"
	"github.com/abhisek/passagequiz/internal/qtype"
	"github.com/abhisek/passagequiz/internal/workspace"
)

var optionMarkers = []string{"①", "②", "③", "④", "⑤"}

var templateFuncs = template.FuncMap{
	"marker": func(i int) string {
		if i >= 0 && i < len(optionMarkers) {
			return optionMarkers[i]
		}
		return strconv.Itoa(i+1) + "."
	},
}

type typeOption struct {
	ID       qtype.Type
	Label    string
	Selected bool
}

type pageData struct {
	State      workspace.State
	Doc        export.Document
	Types      []typeOption
	Notice     string
	EmptyTitle string
	EmptyHint  string
	HasResult  bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ws := s.workspaceFor(w, r)
	st := ws.Snapshot()

	data := pageData{
		State:      st,
		Doc:        st.Document(),
		Notice:     r.URL.Query().Get("notice"),
		EmptyTitle: export.EmptyStateTitle,
		EmptyHint:  export.EmptyStateHint,
		HasResult:  len(st.Result) > 0,
	}
	for _, t := range qtype.All() {
		data.Types = append(data.Types, typeOption{ID: t, Label: t.Label(), Selected: st.Selected(t)})
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.log.Error("render page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// handleGenerate stores the submitted form in the workspace and runs one
// generation. Failures land in the workspace message, so the response is
// always a redirect back to the page.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	types, err := qtype.ParseAll(r.PostForm["types"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ws := s.workspaceFor(w, r)
	ws.SetPassage(r.PostForm.Get("passage"))
	if err := ws.SelectTypes(types); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := ws.Generate(r.Context()); errors.Is(err, workspace.ErrBusy) {
		redirectHome(w, r, "이미 문제를 생성하고 있습니다.")
		return
	}
	redirectHome(w, r, "")
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	s.workspaceFor(w, r).LoadDemo()
	redirectHome(w, r, "")
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.UploadLimit)
	if err := r.ParseMultipartForm(s.cfg.UploadLimit); err != nil {
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}
	_, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	s.workspaceFor(w, r).SimulateUpload(header.Filename)
	redirectHome(w, r, "")
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.workspaceFor(w, r).Reset()
	redirectHome(w, r, "")
}

func (s *Server) handleToggleAnswer(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}
	s.workspaceFor(w, r).ToggleAnswer(i)
	http.Redirect(w, r, "/#q"+strconv.Itoa(i+1), http.StatusSeeOther)
}

// handleExport renders the PDF into memory first so a failure can still
// be reported with a proper status.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	ws := s.workspaceFor(w, r)

	var buf bytes.Buffer
	err := ws.Stream(r.Context(), &buf)
	switch {
	case err == nil:
	case errors.Is(err, export.ErrNothingToExport):
		http.Error(w, "no questions to export", http.StatusConflict)
		return
	case errors.Is(err, workspace.ErrExporting):
		http.Error(w, "export already in progress", http.StatusConflict)
		return
	case errors.Is(err, export.ErrLibraryLoad):
		http.Error(w, export.UserMessage(err), http.StatusServiceUnavailable)
		return
	default:
		http.Error(w, export.UserMessage(err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", contentDisposition(export.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

// contentDisposition builds an attachment header carrying a non-ASCII
// file name (RFC 6266 filename*).
func contentDisposition(name string) string {
	return `attachment; filename="export.pdf"; filename*=UTF-8''` + url.PathEscape(name)
}

func redirectHome(w http.ResponseWriter, r *http.Request, notice string) {
	target := "/"
	if notice != "" {
		target += "?notice=" + url.QueryEscape(notice)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
