// Package workspace holds the state of one question-authoring session and
// orchestrates generation and export against it.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/abhisek/passagequiz/internal/export"
	"github.com/abhisek/passagequiz/internal/logger"
	"github.com/abhisek/passagequiz/internal/qtype"
	"github.com/abhisek/passagequiz/internal/questiongen"
)

// MessageGenerateFailed is shown for every generation failure that is not
// an input error.
const MessageGenerateFailed = "Failed to generate questions. Please check your API key and try again."

var (
	// ErrBusy is returned when a generation is already running.
	ErrBusy = errors.New("generation already in progress")

	// ErrExporting is returned when an export is already running.
	ErrExporting = errors.New("export already in progress")
)

// Exporter renders a question set as a printable document, either saved
// to disk or written to a stream.
type Exporter interface {
	Export(ctx context.Context, qs []questiongen.GeneratedQuestion) (string, error)
	Stream(ctx context.Context, qs []questiongen.GeneratedQuestion, w io.Writer) error
}

// State is a point-in-time copy of a Workspace, safe to read without
// holding any lock.
type State struct {
	Passage   string
	Types     []qtype.Type
	Busy      bool
	Exporting bool
	Result    []questiongen.GeneratedQuestion
	Revealed  []bool
	Message   string
}

// Selected reports whether t is part of the selection.
func (s State) Selected(t qtype.Type) bool {
	return slices.Contains(s.Types, t)
}

// Document returns the on-screen view of the result.
func (s State) Document() export.Document {
	return export.NewDocument(s.Result, func(i int) bool {
		return i < len(s.Revealed) && s.Revealed[i]
	})
}

// Workspace is the mutable state behind one user. It is safe for
// concurrent use.
type Workspace struct {
	gen questiongen.Generator
	exp Exporter
	log *logger.Logger

	mu        sync.Mutex
	passage   string
	types     []qtype.Type
	busy      bool
	exporting bool
	result    []questiongen.GeneratedQuestion
	revealed  []bool
	message   string
}

// New creates an empty Workspace. exp may be nil when export is not
// offered; log may be nil.
func New(gen questiongen.Generator, exp Exporter, log *logger.Logger) *Workspace {
	if log == nil {
		log = logger.Nop()
	}
	return &Workspace{gen: gen, exp: exp, log: log}
}

// Snapshot returns a copy of the current state.
func (w *Workspace) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		Passage:   w.passage,
		Types:     slices.Clone(w.types),
		Busy:      w.busy,
		Exporting: w.exporting,
		Result:    slices.Clone(w.result),
		Revealed:  slices.Clone(w.revealed),
		Message:   w.message,
	}
}

// SetPassage replaces the passage text.
func (w *Workspace) SetPassage(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.passage = text
}

// ToggleType adds t to the selection or removes it if present. Selection
// order is the order types were first selected.
func (w *Workspace) ToggleType(t qtype.Type) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", qtype.ErrUnknownType, string(t))
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := slices.Index(w.types, t); i >= 0 {
		w.types = slices.Delete(w.types, i, i+1)
		return nil
	}
	w.types = append(w.types, t)
	return nil
}

// SelectTypes replaces the selection. Duplicates collapse; unknown types
// are rejected and leave the selection unchanged.
func (w *Workspace) SelectTypes(types []qtype.Type) error {
	for _, t := range types {
		if !t.Valid() {
			return fmt.Errorf("%w: %q", qtype.ErrUnknownType, string(t))
		}
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.types = qtype.Dedup(types)
	return nil
}

// LoadDemo fills the passage with the built-in sample text.
func (w *Workspace) LoadDemo() {
	w.SetPassage(questiongen.DemoPassage)
}

// SimulateUpload stands in for text extraction from an uploaded file: the
// passage becomes a placeholder naming the file.
func (w *Workspace) SimulateUpload(fileName string) {
	w.SetPassage(UploadPlaceholder(fileName))
}

// UploadPlaceholder is the passage text set by SimulateUpload.
func UploadPlaceholder(fileName string) string {
	return fmt.Sprintf("[%s 파일 OCR 시뮬레이션]\n\n이것은 임시 텍스트입니다. 실제 애플리케이션에서는 PDF 또는 이미지 파일의 텍스트가 추출되어 여기에 표시됩니다.", fileName)
}

// ToggleAnswer flips the visibility of the answer of question i.
func (w *Workspace) ToggleAnswer(i int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i >= 0 && i < len(w.revealed) {
		w.revealed[i] = !w.revealed[i]
	}
}

// Reset clears everything except a running operation's flags.
func (w *Workspace) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.passage = ""
	w.types = nil
	w.result = nil
	w.revealed = nil
	w.message = ""
}

// Generate runs one generation with the current passage and selection.
//
// An input error only sets the message; the previous result stays. Any
// other failure clears the result and sets MessageGenerateFailed. The
// returned error is the underlying cause.
func (w *Workspace) Generate(ctx context.Context) error {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return ErrBusy
	}
	req := questiongen.Request{Passage: w.passage, Types: slices.Clone(w.types)}
	if err := questiongen.Validate(req); err != nil {
		w.message = err.Error()
		w.mu.Unlock()
		return err
	}
	w.busy = true
	w.message = ""
	w.result = nil
	w.revealed = nil
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()
	}()

	qs, err := w.gen.Generate(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.log.Error("question generation failed", "error", err)
		w.message = MessageGenerateFailed
		return err
	}
	w.result = qs
	w.revealed = make([]bool, len(qs))
	return nil
}

// Export saves the current result. It returns the saved path.
func (w *Workspace) Export(ctx context.Context) (string, error) {
	var path string
	err := w.exportWith(func(qs []questiongen.GeneratedQuestion) error {
		var err error
		path, err = w.exp.Export(ctx, qs)
		return err
	})
	return path, err
}

// Stream writes the current result as a PDF to out.
func (w *Workspace) Stream(ctx context.Context, out io.Writer) error {
	return w.exportWith(func(qs []questiongen.GeneratedQuestion) error {
		return w.exp.Stream(ctx, qs, out)
	})
}

// exportWith runs fn on a copy of the result while holding the exporting
// flag. Only one export runs at a time.
func (w *Workspace) exportWith(fn func([]questiongen.GeneratedQuestion) error) error {
	w.mu.Lock()
	if len(w.result) == 0 {
		w.mu.Unlock()
		return export.ErrNothingToExport
	}
	if w.exporting {
		w.mu.Unlock()
		return ErrExporting
	}
	if w.exp == nil {
		w.mu.Unlock()
		return fmt.Errorf("%w: export not configured", export.ErrRender)
	}
	qs := slices.Clone(w.result)
	w.exporting = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.exporting = false
		w.mu.Unlock()
	}()

	if err := fn(qs); err != nil {
		w.log.Error("pdf export failed", "error", err)
		return err
	}
	return nil
}
