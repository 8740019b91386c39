package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/go-pdf/fpdf"

	"github.com/abhisek/passagequiz/internal/logger"
	"github.com/abhisek/passagequiz/internal/questiongen"
)

// Options configures a Renderer.
type Options struct {
	// OutputDir receives FileName. Default: current directory.
	OutputDir string
	// StagingDir is the parent of the per-export scratch directory.
	// Default: os.TempDir().
	StagingDir string
}

// Renderer produces the printable PDF of a question set.
type Renderer struct {
	loader  *Loader
	outDir  string
	staging string
	log     *logger.Logger
}

// NewRenderer creates a Renderer backed by loader. log may be nil.
func NewRenderer(loader *Loader, opts Options, log *logger.Logger) *Renderer {
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Renderer{loader: loader, outDir: opts.OutputDir, staging: opts.StagingDir, log: log}
}

// Export renders qs with every answer revealed and saves the result as
// FileName in the output directory. It returns the saved path.
func (r *Renderer) Export(ctx context.Context, qs []questiongen.GeneratedQuestion) (string, error) {
	path := filepath.Join(r.outDir, FileName)
	err := r.render(ctx, qs, func(pdf *fpdf.Fpdf) error {
		return pdf.OutputFileAndClose(path)
	})
	if err != nil {
		return "", err
	}
	r.log.Info("pdf exported", "path", path, "questions", len(qs))
	return path, nil
}

// Stream renders qs like Export but writes the PDF to w.
func (r *Renderer) Stream(ctx context.Context, qs []questiongen.GeneratedQuestion, w io.Writer) error {
	return r.render(ctx, qs, func(pdf *fpdf.Fpdf) error {
		return pdf.Output(w)
	})
}

// render lays out the printable clone in a scratch directory, rasterizes
// each page there and hands the assembled PDF to emit. The scratch
// directory is removed on every path out.
func (r *Renderer) render(ctx context.Context, qs []questiongen.GeneratedQuestion, emit func(*fpdf.Fpdf) error) error {
	if len(qs) == 0 {
		return ErrNothingToExport
	}

	res, err := r.loader.Load(ctx)
	if err != nil {
		return err
	}

	staging, err := os.MkdirTemp(r.staging, "passagequiz-export-*")
	if err != nil {
		return fmt.Errorf("%w: create staging dir: %w", ErrRender, err)
	}
	defer os.RemoveAll(staging)

	doc := NewDocument(qs, nil).Printable()
	pages := layoutDocument(res, doc)

	pdf := fpdf.New("P", "in", "A4", "")
	pdf.SetMargins(MarginIn, MarginIn, MarginIn)
	pdf.SetAutoPageBreak(false, MarginIn)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("passagequiz", true)

	for i, p := range pages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrRender, err)
		}

		img := rasterize(res, p, PageWidthPx, PageHeightPx, RenderScale)
		name := filepath.Join(staging, fmt.Sprintf("page-%03d.jpg", i+1))
		if err := gg.SaveJPG(name, img, JPEGQuality); err != nil {
			return fmt.Errorf("%w: encode page %d: %w", ErrRender, i+1, err)
		}

		pdf.AddPage()
		pdf.ImageOptions(name, MarginIn, MarginIn, ContentWidthIn, 0, false,
			fpdf.ImageOptions{ImageType: "JPG"}, 0, "")
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("%w: assemble: %w", ErrRender, err)
	}

	if err := emit(pdf); err != nil {
		return fmt.Errorf("%w: write: %w", ErrRender, err)
	}
	r.log.Debug("pdf rendered", "pages", len(pages), "staging", staging)
	return nil
}
