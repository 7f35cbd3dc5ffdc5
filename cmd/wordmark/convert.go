// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wordmark/internal/catalog"
	"github.com/pdiddy/wordmark/internal/container"
	"github.com/pdiddy/wordmark/internal/convert"
	"github.com/pdiddy/wordmark/internal/docx"
	"github.com/pdiddy/wordmark/internal/fetch"
	"github.com/pdiddy/wordmark/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> [output]",
	Short: "Convert a Word document to Markdown",
	Long: `Convert transforms a Word (.docx) document into Markdown, preserving
headings, numbered and bulleted lists, hyperlinks, and bold/italic
emphasis. The input may be a local file or an http(s) URL; remote
documents are downloaded before conversion.

When no output path is given the Markdown is written next to the input
with the extension replaced by .md. A directory input converts every
.docx inside it, writing into the output directory (default: the input
directory). With --catalog the result is also recorded in a searchable
SQLite catalog.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := convertConfig(cmd)

	input := args[0]
	docPath, err := fetchInput(ctx, input)
	if err != nil {
		return err
	}

	if info, err := os.Stat(docPath); err == nil && info.IsDir() {
		return runConvertBatch(cmd, docPath, args, cfg)
	}

	outPath := convert.OutputPath(docPath)
	if len(args) == 2 {
		outPath = args[1]
	}

	c, err := newConverter(cfg.Backend)
	if err != nil {
		return err
	}

	status := convert.ConvertDocument(c, docPath, outPath, cfg, os.Stdout)
	if status == types.ConversionFailed {
		return fmt.Errorf("conversion failed for %s", input)
	}

	useCatalog, _ := cmd.Flags().GetBool("catalog")
	if useCatalog && status == types.ConversionDone {
		if err := recordConversion(ctx, cmd, input, docPath, outPath); err != nil {
			return fmt.Errorf("recording conversion: %w", err)
		}
	}

	return nil
}

// runConvertBatch converts every .docx file directly inside dir.
func runConvertBatch(cmd *cobra.Command, dir string, args []string, cfg types.ConvertConfig) error {
	docPaths, err := filepath.Glob(filepath.Join(dir, "*.docx"))
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(docPaths) == 0 {
		return fmt.Errorf("no .docx files found in %s", dir)
	}

	outDir := dir
	if len(args) == 2 {
		outDir = args[1]
	}

	c, err := newConverter(cfg.Backend)
	if err != nil {
		return err
	}

	result := convert.ConvertBatch(c, docPaths, outDir, cfg, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return nil
}

// convertConfig assembles the conversion settings from flags, falling
// back to config file values for the backend.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	backend, _ := cmd.Flags().GetString("backend")
	if !cmd.Flags().Changed("backend") {
		if v := viper.GetString("convert.backend"); v != "" {
			backend = v
		}
	}
	frontmatter, _ := cmd.Flags().GetBool("frontmatter")
	verify, _ := cmd.Flags().GetBool("verify")
	force, _ := cmd.Flags().GetBool("force")

	return types.ConvertConfig{
		Backend:     types.ConversionBackend(backend),
		Frontmatter: frontmatter,
		Verify:      verify,
		Force:       force,
	}
}

// newConverter selects the conversion engine.
func newConverter(backend types.ConversionBackend) (convert.Converter, error) {
	switch backend {
	case types.BackendNative, "":
		return &convert.NativeConverter{}, nil
	case types.BackendPandoc:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		pc, err := convert.NewPandocConverter(rt)
		if err != nil {
			return nil, err
		}
		return pc, nil
	default:
		return nil, fmt.Errorf("unknown backend %q: use native or pandoc", backend)
	}
}

// fetchInput downloads remote inputs into the configured download
// directory and returns a local path. Local inputs pass through.
func fetchInput(ctx context.Context, input string) (string, error) {
	if !fetch.IsRemote(input) {
		return input, nil
	}

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("fetch.timeout"),
			UserAgent: viper.GetString("fetch.user_agent"),
		},
		DownloadDir: viper.GetString("fetch.download_dir"),
		MaxRetries:  viper.GetInt("fetch.max_retries"),
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "wordmark/" + version
	}

	dir := cfg.DownloadDir
	if dir == "" {
		var err error
		dir, err = os.MkdirTemp("", "wordmark-*")
		if err != nil {
			return "", fmt.Errorf("creating download directory: %w", err)
		}
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating download directory: %w", err)
	}

	destPath := filepath.Join(dir, fetch.Filename(input))
	client := &http.Client{Timeout: cfg.Timeout}

	fmt.Fprintf(os.Stdout, "downloading: %s\n", input)
	if err := fetch.Download(ctx, client, input, destPath, cfg); err != nil {
		return "", err
	}
	return destPath, nil
}

// recordConversion parses the converted document again to collect the
// title and node count, then stores an entry in the catalog.
func recordConversion(ctx context.Context, cmd *cobra.Command, input, docPath, outPath string) error {
	catalogDir, _ := cmd.Flags().GetString("catalog-dir")

	store, err := catalog.NewStore(types.CatalogConfig{CatalogDir: catalogDir})
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := docx.Parse(docPath)
	if err != nil {
		return err
	}

	body, err := os.ReadFile(outPath)
	if err != nil {
		return err
	}

	info, err := os.Stat(docPath)
	if err != nil {
		return err
	}

	entry := catalog.Entry{
		ID:            entryID(docPath),
		SourcePath:    input,
		OutputPath:    outPath,
		Title:         doc.Title,
		Status:        types.ConversionDone,
		Nodes:         len(doc.Nodes),
		ConvertedAt:   time.Now().UTC(),
		SourceModTime: info.ModTime(),
	}

	outcome, err := store.Record(ctx, entry, string(body))
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "catalog: %s %s\n", outcome, entry.ID)
	return nil
}

// entryID derives a catalog slug from the document filename.
func entryID(docPath string) string {
	base := filepath.Base(docPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToLower(strings.ReplaceAll(base, " ", "-"))
}

func init() {
	convertCmd.Flags().String("backend", "native", "conversion backend: native or pandoc")
	convertCmd.Flags().Bool("frontmatter", false, "prepend YAML frontmatter to the output")
	convertCmd.Flags().Bool("verify", false, "re-parse the output and report its block structure")
	convertCmd.Flags().Bool("force", false, "overwrite existing output instead of skipping")
	convertCmd.Flags().Bool("catalog", false, "record the conversion in the catalog")
	convertCmd.Flags().String("catalog-dir", "catalog", "directory holding the catalog database")

	rootCmd.AddCommand(convertCmd)
}
