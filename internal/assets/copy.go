package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/homepage/internal/progress"
)

// CopyResult counts what Copy did.
type CopyResult struct {
	Copied    int
	Unchanged int
}

// Copy copies files into dstDir under their relative paths. Files whose
// destination already has the same content hash are left alone. A nil
// reporter reports nothing.
func Copy(ctx context.Context, files []File, dstDir string, reporter progress.Reporter) (CopyResult, error) {
	if reporter == nil {
		reporter = progress.Nop{}
	}

	var res CopyResult
	reporter.Start(len(files))
	defer reporter.Finish()

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		dst := filepath.Join(dstDir, filepath.FromSlash(f.RelPath))
		if hash, err := hashFile(dst); err == nil && hash == f.ContentHash {
			res.Unchanged++
			reporter.Update(i+1, f.RelPath)
			continue
		}

		if err := copyFile(f.Path, dst); err != nil {
			return res, fmt.Errorf("copying %s: %w", f.RelPath, err)
		}
		res.Copied++
		reporter.Update(i+1, f.RelPath)
	}
	return res, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
