package table

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/prefgrid/pkg/errors"
)

// Load reads a TOML dataset from path and validates it.
// Presentation strings missing from the file are left empty; call
// [Dataset.WithDefaults] to fill them.
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return Dataset{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "data file %s", path)
	}
	if err != nil {
		return Dataset{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "open data file %s", path)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a TOML dataset from r and validates it.
// Keys that do not belong to the dataset format are rejected so that a typo
// such as "postive" does not silently produce an empty label.
func Decode(r io.Reader) (Dataset, error) {
	var d Dataset
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		var perr toml.ParseError
		if stderrors.As(err, &perr) {
			return Dataset{}, errors.InvalidInput("parse data file: line %d: %s", perr.Position.Line, perr.Message)
		}
		return Dataset{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode data file")
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Dataset{}, errors.InvalidInput("unknown keys in data file: %s", strings.Join(keys, ", "))
	}

	if err := d.Validate(); err != nil {
		return Dataset{}, err
	}
	return d, nil
}
