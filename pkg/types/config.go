package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that fetch remote input.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "wordmark/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ConversionBackend identifies the document conversion engine.
type ConversionBackend string

const (
	// BackendNative parses the .docx container directly and renders
	// Markdown through the structure mapper.
	BackendNative ConversionBackend = "native"

	// BackendPandoc pipes the document through a pandoc container image.
	BackendPandoc ConversionBackend = "pandoc"
)

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// Backend selects the conversion engine: native or pandoc.
	Backend ConversionBackend `json:"backend" yaml:"backend"`

	// Frontmatter prepends YAML frontmatter (source path, conversion
	// time) to the Markdown output.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`

	// Verify re-parses the rendered Markdown and reports its block
	// structure after conversion.
	Verify bool `json:"verify" yaml:"verify"`

	// Force overwrites existing Markdown output instead of skipping.
	Force bool `json:"force" yaml:"force"`
}

// StylesConfig holds settings for the styled-paragraph extraction stage.
type StylesConfig struct {
	// Styles lists the style names to extract. Matching is
	// case-insensitive.
	Styles []string `json:"styles" yaml:"styles"`

	// Output is the path for the grouped Markdown extraction file.
	Output string `json:"output" yaml:"output"`
}

// CatalogConfig holds settings for the conversion catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding the catalog database
	// (contains catalog.db).
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of query results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// FetchConfig holds settings for downloading remote source documents.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// DownloadDir is where fetched documents are stored before
	// conversion. Empty means a temporary directory.
	DownloadDir string `json:"download_dir" yaml:"download_dir"`

	// MaxRetries is the number of retry attempts on rate-limited
	// responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Styles  StylesConfig  `json:"styles" yaml:"styles"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
}
