//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package fileops_test

import (
	"testing"

	"github.com/joe/fstour/pkg/fileops"
	"github.com/joe/fstour/pkg/filesystem"
	"github.com/joe/fstour/pkg/pathutil"
)

type backend struct {
	name string
	// setup returns helpers over a fresh filesystem and an existing, empty root.
	setup func(t *testing.T, opts ...filesystem.Option) (*fileops.FileOps, pathutil.Path)
}

//nolint:gochecknoglobals // Shared backend table
var backends = []backend{
	{
		name: "local",
		setup: func(t *testing.T, opts ...filesystem.Option) (*fileops.FileOps, pathutil.Path) {
			t.Helper()

			return fileops.NewRealFileOps(opts...), pathutil.New(t.TempDir())
		},
	},
	{
		name: "mem",
		setup: func(t *testing.T, opts ...filesystem.Option) (*fileops.FileOps, pathutil.Path) {
			t.Helper()

			fsys := filesystem.NewMemFileSystem(opts...)
			if err := fsys.MkdirAll("root", fileops.DefaultDirPermissions); err != nil {
				t.Fatalf("MkdirAll failed: %v", err)
			}

			return fileops.NewFileOps(fsys), pathutil.New("root")
		},
	},
}

// forEachBackend runs fn as a parallel subtest per backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, ops *fileops.FileOps, root pathutil.Path)) {
	t.Helper()

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()

			ops, root := b.setup(t)
			fn(t, ops, root)
		})
	}
}

func mustEcho(t *testing.T, ops *fileops.FileOps, text string, p pathutil.Path) {
	t.Helper()

	if err := ops.Echo(text, p); err != nil {
		t.Fatalf("Echo(%q, %s) failed: %v", text, p, err)
	}
}

func mustCat(t *testing.T, ops *fileops.FileOps, p pathutil.Path) string {
	t.Helper()

	content, err := ops.Cat(p)
	if err != nil {
		t.Fatalf("Cat(%s) failed: %v", p, err)
	}

	return content
}
