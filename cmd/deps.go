package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/passagequiz/internal/export"
	"github.com/abhisek/passagequiz/internal/llm"
	"github.com/abhisek/passagequiz/internal/logger"
	"github.com/abhisek/passagequiz/internal/questiongen"
	"github.com/abhisek/passagequiz/internal/store"
)

// deps holds everything a generating command needs.
type deps struct {
	log       *logger.Logger
	store     *store.Store
	provider  llm.Provider
	generator *questiongen.LLMGenerator
	renderer  *export.Renderer
}

type depsOptions struct {
	// logToFile sends log output next to the database unless
	// PASSAGEQUIZ_LOG_FILE says otherwise.
	logToFile bool
	// outputDir is where exported PDFs are saved.
	outputDir string
}

// openDeps opens the store and builds the logger, provider, generator and
// renderer. Callers must call close.
func openDeps(cmd *cobra.Command, opts depsOptions) (*deps, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logOpts := logger.OptionsFromEnv()
	if opts.logToFile && logOpts.File == "" {
		logOpts.File = filepath.Join(filepath.Dir(dbPath), "passagequiz.log")
	}
	log, err := logger.New(logOpts)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProvider(cmd.Context(), llmConfig, st.EventRepo(), log)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	if mock := llm.UnwrapMock(provider); mock != nil {
		mock.SetFallback(llm.MockResponse{Content: questiongen.SampleResponse()})
	}

	loader := export.NewLoader(export.LoaderConfigFromEnv(), log)
	log.Debug("dependencies ready", "db", dbPath, "provider", llmConfig.Provider, "model", provider.ModelID())

	return &deps{
		log:       log,
		store:     st,
		provider:  provider,
		generator: questiongen.New(provider, questiongen.DefaultConfig(), log),
		renderer:  export.NewRenderer(loader, export.Options{OutputDir: opts.outputDir}, log),
	}, nil
}

func (d *deps) close() {
	if err := d.store.Close(); err != nil {
		d.log.Warn("close store", "error", err)
	}
	d.log.Sync()
}
