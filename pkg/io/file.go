package io

import (
	"fmt"
	"os"

	"github.com/matzehuels/prefgrid/pkg/errors"
)

// WriteFile creates or truncates path and writes data to it.
//
// Any failure is a RENDER_ERROR. If the write or close fails, the partial
// file is removed so that no truncated image is left behind.
func WriteFile(path string, data []byte) (err error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return errors.WrapRender(err, "output %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WrapRender(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapRender(cerr, "close %s", path)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	n, err := f.Write(data)
	if err != nil {
		return errors.WrapRender(err, "write %s", path)
	}
	if n != len(data) {
		return errors.WrapRender(fmt.Errorf("short write: %d of %d bytes", n, len(data)), "write %s", path)
	}
	return nil
}
