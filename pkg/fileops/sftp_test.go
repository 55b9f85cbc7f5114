//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package fileops_test

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers
	"github.com/pkg/sftp"

	"github.com/joe/fstour/pkg/fileops"
	"github.com/joe/fstour/pkg/filesystem"
	"github.com/joe/fstour/pkg/pathutil"
)

// newSFTPOps returns helpers over an in-process SFTP server serving the
// local disk.
func newSFTPOps(t *testing.T) *fileops.FileOps {
	t.Helper()

	serverConn, clientConn := net.Pipe()

	server, err := sftp.NewServer(serverConn)
	if err != nil {
		t.Fatalf("failed to start sftp server: %v", err)
	}

	go func() {
		_ = server.Serve()
	}()

	client, err := sftp.NewClientPipe(clientConn, clientConn)
	if err != nil {
		t.Fatalf("failed to start sftp client: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
		_ = server.Close()
	})

	return fileops.NewFileOps(filesystem.NewSFTPFileSystemFromClient(client))
}

func TestTouch_SFTPKeepsModeAndContent(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)
	ops := newSFTPOps(t)
	name := filepath.Join(t.TempDir(), "private.txt")

	g.Expect(os.WriteFile(name, []byte("X"), 0o600)).To(Succeed())
	g.Expect(os.Chmod(name, 0o600)).To(Succeed())

	g.Expect(ops.Touch(pathutil.New(name))).To(Succeed())

	info, err := os.Stat(name)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))

	g.Expect(mustCat(t, ops, pathutil.New(name))).To(Equal("X"))
}

func TestTouch_SFTPCreatesWithDefaultMode(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)
	ops := newSFTPOps(t)
	name := filepath.Join(t.TempDir(), "e.txt")

	g.Expect(ops.Touch(pathutil.New(name))).To(Succeed())

	info, err := os.Stat(name)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(info.Size()).To(BeZero())
	g.Expect(info.Mode().Perm()).To(Equal(os.FileMode(fileops.DefaultFilePermissions)))
}
