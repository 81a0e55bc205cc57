package jsconfig

import (
	"os"

	"github.com/aalvaropc/cfgjs/internal/domain"
	"github.com/aalvaropc/cfgjs/internal/ports"
)

const fileMode = 0o644

// Writer overwrites the target file in place. The parent directory must exist.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

var _ ports.ConfigWriter = (*Writer)(nil)

func (w *Writer) WriteConfig(path string, content []byte) error {
	if err := os.WriteFile(path, content, fileMode); err != nil {
		return domain.Execution("jsconfig.write", path, err)
	}
	return nil
}
