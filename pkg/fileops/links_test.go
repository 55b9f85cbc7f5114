//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package fileops_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	pkgerrors "github.com/joe/fstour/pkg/errors"
	"github.com/joe/fstour/pkg/fileops"
	"github.com/joe/fstour/pkg/filesystem"
	"github.com/joe/fstour/pkg/pathutil"
)

func TestSymlink(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, ops *fileops.FileOps, root pathutil.Path) {
		g := NewWithT(t)
		a := root.Join("a")
		link := root.JoinAll("a", "c", "b.txt")

		g.Expect(ops.SupportsSymlinks()).To(BeTrue())
		g.Expect(ops.CreateDirAll(a.Join("c"))).To(Succeed())
		mustEcho(t, ops, "hello", a.Join("b.txt"))

		g.Expect(ops.Symlink("../b.txt", link)).To(Succeed())

		target, err := ops.ReadLink(link)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(target.Display()).To(Equal("../b.txt"))

		g.Expect(mustCat(t, ops, link)).To(Equal("hello"))

		err = ops.Symlink("../b.txt", link)
		g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindAlreadyExists))

		// Removing the link leaves its target alone.
		g.Expect(ops.RemoveFile(link)).To(Succeed())
		g.Expect(mustCat(t, ops, a.Join("b.txt"))).To(Equal("hello"))
	})
}

func TestSymlink_TargetNotResolved(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, ops *fileops.FileOps, root pathutil.Path) {
		g := NewWithT(t)
		link := root.Join("dangling")

		g.Expect(ops.Symlink("does/not/exist", link)).To(Succeed())

		target, err := ops.ReadLink(link)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(target.Display()).To(Equal("does/not/exist"))

		exists, err := ops.Exists(link)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(exists).To(BeFalse())
	})
}

func TestSymlink_Unsupported(t *testing.T) {
	t.Parallel()

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()

			g := NewWithT(t)
			ops, root := b.setup(t, filesystem.WithoutSymlinks())
			link := root.Join("link")

			g.Expect(ops.SupportsSymlinks()).To(BeFalse())

			err := ops.Symlink("target", link)
			g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindUnsupported))
			g.Expect(errors.Is(err, pkgerrors.ErrUnsupported)).To(BeTrue())

			entries, err := ops.ListDir(root)
			g.Expect(err).ShouldNot(HaveOccurred())
			g.Expect(entries).To(BeEmpty())

			_, err = ops.ReadLink(link)
			g.Expect(pkgerrors.KindOf(err)).To(Equal(pkgerrors.KindUnsupported))
		})
	}
}
