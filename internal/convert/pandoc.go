// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdiddy/wordmark/internal/container"
)

const imagePandoc = "pandoc/core:latest"

// pandocArgs reads docx from stdin and writes GitHub-flavored Markdown
// to stdout.
var pandocArgs = []string{"-f", "docx", "-t", "gfm", "-o", "-"}

// PandocConverter converts documents by piping them through the pandoc
// container image. It depends on a container.Runtime (docker or podman)
// injected at construction time.
type PandocConverter struct {
	runtime container.Runtime
}

// NewPandocConverter creates a converter that uses the given container
// runtime to run the pandoc image. It verifies that the image exists
// locally before returning.
func NewPandocConverter(rt container.Runtime) (*PandocConverter, error) {
	if err := rt.ImageExists(imagePandoc); err != nil {
		return nil, fmt.Errorf("pandoc image not available in %s: %w", rt.Name(), err)
	}
	return &PandocConverter{runtime: rt}, nil
}

// Convert pipes the document at path through the pandoc container and
// returns the resulting Markdown text.
func (p *PandocConverter) Convert(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening document %s: %w", path, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := p.runtime.Run(imagePandoc, pandocArgs, f, &out); err != nil {
		return "", fmt.Errorf("converting %s with pandoc: %w", path, err)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("pandoc produced empty output for %s", path)
	}

	return out.String(), nil
}
