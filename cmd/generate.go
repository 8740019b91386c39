package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/passagequiz/internal/export"
	"github.com/abhisek/passagequiz/internal/llm"
	"github.com/abhisek/passagequiz/internal/qtype"
	"github.com/abhisek/passagequiz/internal/questiongen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate questions for a passage and print them",
	Long: `Generate one question per selected type for a passage and print the
result. The passage is read from --file ("-" for stdin) or, with --demo,
taken from the built-in sample text.

Types accept IDs, Korean labels or English names; see "passagequiz types".`,
	Annotations: map[string]string{needsLLM: "true"},
	Args:        cobra.NoArgs,
	RunE:        runGenerate,
}

func init() {
	generateCmd.Flags().StringP("file", "f", "", `Passage file ("-" reads stdin)`)
	generateCmd.Flags().Bool("demo", false, "Use the built-in sample passage")
	generateCmd.Flags().StringSliceP("type", "t", nil, "Question type (repeatable)")
	generateCmd.Flags().Bool("all", false, "Select every question type")
	generateCmd.Flags().String("format", "json", "Output format: json or text")
	generateCmd.Flags().Bool("pdf", false, "Also export the questions as a PDF")
	generateCmd.Flags().StringP("out", "o", ".", "Directory for the exported PDF")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "json" && format != "text" {
		return fmt.Errorf("invalid format %q: must be json or text", format)
	}

	passage, err := readPassage(cmd)
	if err != nil {
		return err
	}
	types, err := selectedTypes(cmd)
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out")
	d, err := openDeps(cmd, depsOptions{outputDir: outDir})
	if err != nil {
		return err
	}
	defer d.close()

	ctx := llm.WithPurpose(cmd.Context(), "cli-generate")
	qs, err := d.generator.Generate(ctx, questiongen.Request{Passage: passage, Types: types})
	if err != nil {
		var inErr *questiongen.InputError
		switch {
		case errors.As(err, &inErr):
			return err
		case llm.Transient(err):
			return fmt.Errorf("generation failed, provider unavailable or rate limited: %w", err)
		default:
			return fmt.Errorf("generation failed: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if format == "text" {
		writeText(out, qs)
	} else if err := writeJSON(out, qs); err != nil {
		return err
	}

	if pdf, _ := cmd.Flags().GetBool("pdf"); pdf {
		path, err := d.renderer.Export(cmd.Context(), qs)
		if err != nil {
			return fmt.Errorf("%s: %w", export.UserMessage(err), err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "saved", path)
	}
	return nil
}

func readPassage(cmd *cobra.Command) (string, error) {
	if demo, _ := cmd.Flags().GetBool("demo"); demo {
		return questiongen.DemoPassage, nil
	}
	path, _ := cmd.Flags().GetString("file")
	var (
		b   []byte
		err error
	)
	switch path {
	case "":
		return "", errors.New("no passage: use --file or --demo")
	case "-":
		b, err = io.ReadAll(cmd.InOrStdin())
	default:
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read passage: %w", err)
	}
	return string(b), nil
}

func selectedTypes(cmd *cobra.Command) ([]qtype.Type, error) {
	if all, _ := cmd.Flags().GetBool("all"); all {
		return qtype.All(), nil
	}
	values, _ := cmd.Flags().GetStringSlice("type")
	return qtype.ParseAll(values)
}

func writeJSON(w io.Writer, qs []questiongen.GeneratedQuestion) error {
	if qs == nil {
		qs = []questiongen.GeneratedQuestion{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(qs)
}

var optionMarkers = []string{"①", "②", "③", "④", "⑤"}

func writeText(w io.Writer, qs []questiongen.GeneratedQuestion) {
	if len(qs) == 0 {
		fmt.Fprintln(w, "No questions generated.")
		return
	}
	for i, q := range qs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%d. [%s]\n", i+1, q.Type.Label())
		fmt.Fprintln(w, strings.TrimSpace(q.Question))
		for j, opt := range q.Options {
			marker := fmt.Sprintf("%d.", j+1)
			if j < len(optionMarkers) {
				marker = optionMarkers[j]
			}
			fmt.Fprintf(w, "  %s %s\n", marker, opt)
		}
		fmt.Fprintf(w, "%s%s\n", export.AnswerPrefix, q.Answer)
		if q.Explanation != "" {
			fmt.Fprintln(w, q.Explanation)
		}
	}
}
