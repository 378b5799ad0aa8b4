package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/semaphore"

	ierrors "github.com/Elun4705/Interactive/internal/errors"
	"github.com/Elun4705/Interactive/internal/logger"
)

// Reader reads files into attachments, bounding how many reads run at once.
type Reader struct {
	sem *semaphore.Weighted
}

// NewReader creates a reader allowing up to concurrent parallel reads.
func NewReader(concurrent int) *Reader {
	if concurrent < 1 {
		concurrent = 1
	}
	return &Reader{sem: semaphore.NewWeighted(int64(concurrent))}
}

// Read reads path and encodes it. It blocks while the concurrency bound is
// reached and returns early if ctx is canceled.
func (r *Reader) Read(ctx context.Context, path string) (File, error) {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return File{}, ierrors.E(ierrors.Op("upload.Read"), ierrors.KindCanceled, err)
	}
	defer r.sem.Release(1)

	info, err := os.Stat(path)
	if err != nil {
		return File{}, ierrors.FileReadFailed(path, err)
	}
	if info.IsDir() {
		return File{}, ierrors.FileReadFailed(path, fmt.Errorf("is a directory"))
	}
	if info.Size() > MaxFileSize {
		return File{}, ierrors.FileReadFailed(path, fmt.Errorf("file is larger than %d MB", MaxFileSize>>20))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, ierrors.FileReadFailed(path, err)
	}
	if err := ctx.Err(); err != nil {
		return File{}, ierrors.E(ierrors.Op("upload.Read"), ierrors.KindCanceled, err)
	}

	name := filepath.Base(path)
	logger.WithComponent("upload").Debug("file read", "name", name, "bytes", len(data))
	return File{Name: name, DataURL: Encode(name, data)}, nil
}
