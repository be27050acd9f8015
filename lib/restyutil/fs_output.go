package restyutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// InstrumentOutput receives full http exchanges keyed by a per-client request id.
type InstrumentOutput interface {
	Write(id string, contents string)
}

// FilesystemOutput writes each exchange to its own file in a directory,
// useful for figuring out why a selector stopped matching.
type FilesystemOutput struct {
	directory string
}

// NewFilesystemOutput clears out dir and recreates it.
func NewFilesystemOutput(dir string) (FilesystemOutput, error) {
	err := os.RemoveAll(dir)
	if err != nil {
		return FilesystemOutput{}, err
	}
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return FilesystemOutput{}, err
	}
	return FilesystemOutput{directory: dir}, nil
}

func (o FilesystemOutput) Write(id string, contents string) {
	path := filepath.Join(o.directory, fmt.Sprintf("%s.txt", id))
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write message info file", "id", id, "err", err)
	}
}
