package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/prefgrid/pkg/errors"
	prefio "github.com/matzehuels/prefgrid/pkg/io"
)

// ArtifactPath returns the file an artifact in format is written to.
// With a single format the output path is used as-is. With several, the
// output's extension is replaced by each format's, so "out/fig.jpg" with
// jpg and svg yields "out/fig.jpg" and "out/fig.svg".
func ArtifactPath(output string, format string, formats int) string {
	if formats <= 1 {
		return output
	}
	return strings.TrimSuffix(output, filepath.Ext(output)) + "." + format
}

// WriteArtifacts writes every artifact in result to disk and returns the
// paths written, in render order. opts must be the options the result was
// produced with; defaults are applied again so a zero Output resolves the
// same way Execute resolved it.
//
// Each file is created or replaced whole. On the first failure the
// remaining artifacts are not written.
func WriteArtifacts(result *Result, opts Options) ([]string, error) {
	if result == nil || len(result.Formats) == 0 {
		return nil, errors.Render("no artifacts to write")
	}
	opts.Formats = result.Formats
	opts.SetDefaults()

	paths := make([]string, 0, len(result.Formats))
	for _, format := range result.Formats {
		data, ok := result.Artifacts[format]
		if !ok {
			return paths, errors.New(errors.ErrCodeInternal, "missing %s artifact", format)
		}

		path := ArtifactPath(opts.Output, format, len(result.Formats))
		if err := prefio.WriteFile(path, data); err != nil {
			return paths, err
		}
		opts.Logger.Debug("wrote artifact", "path", path, "bytes", len(data))
		paths = append(paths, path)
	}
	return paths, nil
}
