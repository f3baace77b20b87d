package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans out writes to all given writers, used to
// tee logs to stdout and the rotated log file at the same time.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	cw.Writers = append(cw.Writers, writers...)
	return cw
}

func (cw CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Combine(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
