//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package fileops_test

import (
	"os"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	pkgerrors "github.com/joe/fstour/pkg/errors"
	"github.com/joe/fstour/pkg/fileops"
	"github.com/joe/fstour/pkg/pathutil"
)

func TestCreateDir(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, ops *fileops.FileOps, root pathutil.Path) {
		g := NewWithT(t)
		dir := root.Join("a")

		g.Expect(ops.CreateDir(dir)).To(Succeed())

		exists, err := ops.Exists(dir)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(exists).To(BeTrue())

		err = ops.CreateDir(dir)
		g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindAlreadyExists))

		err = ops.CreateDir(root.JoinAll("x", "y"))
		g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindNotFound))
	})
}

func TestCreateDirAll(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, ops *fileops.FileOps, root pathutil.Path) {
		g := NewWithT(t)
		deep := root.JoinAll("a", "c", "d")

		g.Expect(ops.CreateDirAll(deep)).To(Succeed())
		g.Expect(ops.CreateDirAll(deep)).To(Succeed())

		for _, p := range []pathutil.Path{root.Join("a"), root.JoinAll("a", "c"), deep} {
			exists, err := ops.Exists(p)
			g.Expect(err).ShouldNot(HaveOccurred())
			g.Expect(exists).To(BeTrue(), "%s should exist", p)
		}
	})
}

func TestCreateDirAll_ExistingPrefix(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, ops *fileops.FileOps, root pathutil.Path) {
		g := NewWithT(t)

		g.Expect(ops.CreateDir(root.Join("a"))).To(Succeed())
		g.Expect(ops.CreateDirAll(root.JoinAll("a", "c", "d"))).To(Succeed())

		exists, err := ops.Exists(root.JoinAll("a", "c", "d"))
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(exists).To(BeTrue())
	})
}

func TestRemoveDir(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, ops *fileops.FileOps, root pathutil.Path) {
		g := NewWithT(t)
		dir := root.Join("a")
		file := dir.Join("b.txt")

		g.Expect(ops.CreateDir(dir)).To(Succeed())
		mustEcho(t, ops, "hello", file)

		err := ops.RemoveDir(dir)
		g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindDirectoryNotEmpty))

		g.Expect(ops.RemoveFile(file)).To(Succeed())
		g.Expect(ops.RemoveDir(dir)).To(Succeed())

		exists, err := ops.Exists(dir)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(exists).To(BeFalse())

		err = ops.RemoveDir(dir)
		g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindNotFound))
	})
}

func TestRemoveDir_File(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, ops *fileops.FileOps, root pathutil.Path) {
		g := NewWithT(t)
		file := root.Join("f.txt")

		mustEcho(t, ops, "data", file)

		err := ops.RemoveDir(file)
		g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindNotDirectory))
		g.Expect(mustCat(t, ops, file)).To(Equal("data"))
	})
}

func TestRemoveFile(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, ops *fileops.FileOps, root pathutil.Path) {
		g := NewWithT(t)
		file := root.Join("e.txt")
		dir := root.Join("d")

		g.Expect(ops.Touch(file)).To(Succeed())
		g.Expect(ops.RemoveFile(file)).To(Succeed())

		exists, err := ops.Exists(file)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(exists).To(BeFalse())

		err = ops.RemoveFile(file)
		g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindNotFound))

		g.Expect(ops.CreateDir(dir)).To(Succeed())

		err = ops.RemoveFile(dir)
		g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindIsDirectory))

		exists, err = ops.Exists(dir)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(exists).To(BeTrue())
	})
}

func TestListDir_Scenario(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, ops *fileops.FileOps, root pathutil.Path) {
		g := NewWithT(t)
		dir := root.Join("a")

		g.Expect(ops.CreateDir(dir)).To(Succeed())
		mustEcho(t, ops, "hello", dir.Join("b.txt"))

		entries, err := ops.ListDir(dir)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(entries).To(HaveLen(1))
		g.Expect(entries[0].Name()).To(Equal("b.txt"))
		g.Expect(entries[0].IsDir()).To(BeFalse())
		g.Expect(entries[0].Path.Display()).To(Equal(root.Display() + string(os.PathSeparator) + "a" +
			string(os.PathSeparator) + "b.txt"))

		info, err := entries[0].Info()
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(info.Size()).To(Equal(int64(5)))
	})
}

func TestListDir_EntryInfoFailure(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)
	ops := fileops.NewRealFileOps()
	dir := pathutil.New(t.TempDir())

	mustEcho(t, ops, "x", dir.Join("x"))
	mustEcho(t, ops, "y", dir.Join("y"))

	entries, err := ops.ListDir(dir)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(entries).To(HaveLen(2))

	g.Expect(ops.RemoveFile(dir.Join("x"))).To(Succeed())

	for _, entry := range entries {
		info, err := entry.Info()

		switch entry.Name() {
		case "x":
			g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindNotFound))
			g.Expect(err.Error()).To(ContainSubstring(entry.Path.Display()))
			g.Expect(info).To(BeNil())
		case "y":
			g.Expect(err).ShouldNot(HaveOccurred())
			g.Expect(info.Size()).To(Equal(int64(1)))
		default:
			t.Fatalf("unexpected entry %q", entry.Name())
		}
	}
}

func TestListDir_Errors(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, ops *fileops.FileOps, root pathutil.Path) {
		g := NewWithT(t)

		_, err := ops.ListDir(root.Join("missing"))
		g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindNotFound))

		file := root.Join("f.txt")
		mustEcho(t, ops, "x", file)

		_, err = ops.ListDir(file)
		g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindNotDirectory))
	})
}

func TestListDir_Empty(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, ops *fileops.FileOps, root pathutil.Path) {
		g := NewWithT(t)

		entries, err := ops.ListDir(root)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(entries).To(BeEmpty())
	})
}

func TestExists(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, ops *fileops.FileOps, root pathutil.Path) {
		g := NewWithT(t)

		exists, err := ops.Exists(root.Join("nothing"))
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(exists).To(BeFalse())

		exists, err = ops.Exists(root)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(exists).To(BeTrue())
	})
}

func TestPermissionDenied(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	g := NewWithT(t)
	ops := fileops.NewRealFileOps()
	root := pathutil.New(t.TempDir())
	locked := root.Join("locked")

	g.Expect(ops.CreateDir(locked)).To(Succeed())
	g.Expect(os.Chmod(locked.Native(), 0o500)).To(Succeed())

	t.Cleanup(func() {
		_ = os.Chmod(locked.Native(), 0o755)
	})

	err := ops.Touch(locked.Join("f.txt"))
	g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindPermissionDenied))
}
