package demo

import (
	"slices"

	"github.com/joe/fstour/pkg/fileops"
	"github.com/joe/fstour/pkg/pathutil"
)

// Clean removes everything below root, children before parents, and keeps
// root itself. A missing root is not an error.
func Clean(ops *fileops.FileOps, root pathutil.Path) error {
	exists, err := ops.Exists(root)
	if err != nil || !exists {
		return err
	}

	entries, err := ops.Walk(root)
	if err != nil {
		return err
	}

	for _, entry := range slices.Backward(entries) {
		if entry.IsDir {
			err = ops.RemoveDir(entry.Path)
		} else {
			err = ops.RemoveFile(entry.Path)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
