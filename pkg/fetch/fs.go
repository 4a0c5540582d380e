package fetch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/dmitrymomot/l20n/pkg/l10n"
)

// FS reads resources from a file system such as os.DirFS or an embed.FS.
// Resource ids are slash separated paths relative to the root of the file
// system.
type FS struct {
	fsys fs.FS
}

// NewFS creates a fetcher over fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

func (f *FS) Fetch(ctx context.Context, resID string, lang l10n.Language) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := path.Clean(ExpandLocale(resID, lang.Code))
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("%w: invalid path %q", l10n.ErrNotFound, name)
	}

	data, err := fs.ReadFile(f.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", l10n.ErrNotFound, name)
	}
	if err != nil {
		return "", errors.Join(ErrFailedToRead, err)
	}
	return string(data), nil
}
