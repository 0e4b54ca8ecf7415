/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	specs "github.com/macaroni-os/jessica/pkg/specs"

	"github.com/macaroni-os/macaronictl/pkg/utils"
	"github.com/pkg/errors"
)

// DirLoader reads templates from the local filesystem. Relative paths are
// resolved under Root when it is set.
type DirLoader struct {
	*LoaderCommon

	Root string
}

func NewDirLoader(c *specs.JessicaConfig, root string) *DirLoader {
	return &DirLoader{
		LoaderCommon: NewLoaderCommon(c),
		Root:         root,
	}
}

func (l *DirLoader) GetType() string { return "dir" }

func (l *DirLoader) GetFilePath(f string) string {
	if l.Root == "" || filepath.IsAbs(f) {
		return f
	}
	return filepath.Join(l.Root, f)
}

// CheckRoot verifies that the configured root is an existing directory.
func (l *DirLoader) CheckRoot() error {
	if l.Root == "" {
		return nil
	}
	if !utils.Exists(l.Root) {
		return fmt.Errorf("root directory %s not found", l.Root)
	}
	isDir, err := utils.IsDir(l.Root)
	if err != nil {
		return err
	}
	if !isDir {
		return fmt.Errorf("root %s is not a directory", l.Root)
	}
	return nil
}

func (l *DirLoader) ReadFile(_ context.Context, f string) (string, error) {
	p := l.GetFilePath(f)

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &notFound{path: p, cause: err}
		}
		return "", errors.Wrapf(err, "error on read file %s", p)
	}

	l.Logger.Debug(fmt.Sprintf(":page_facing_up:Read %s (%d bytes)", p, len(data)))

	return toText(p, data)
}
