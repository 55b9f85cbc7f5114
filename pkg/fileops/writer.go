package fileops

import (
	"io"
	"os"

	pkgerrors "github.com/joe/fstour/pkg/errors"
	"github.com/joe/fstour/pkg/filesystem"
	"github.com/joe/fstour/pkg/pathutil"
)

// Create opens the file at p for writing, creating it or truncating it.
// The caller owns the handle.
func (fo *FileOps) Create(p pathutil.Path) (filesystem.File, error) {
	file, err := fo.FS.OpenFile(p.Native(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return nil, pkgerrors.New("create", p.Display(), err)
	}

	return file, nil
}

// WriteAll writes all of data to w, retrying short writes.
// A write that makes no progress fails with io.ErrShortWrite.
func WriteAll(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n, err := w.Write(data)
		if err != nil {
			return pkgerrors.New("write", nameOf(w), err)
		}

		if n <= 0 {
			return pkgerrors.New("write", nameOf(w), io.ErrShortWrite)
		}

		data = data[n:]
	}

	return nil
}

// Touch creates the file at p if it is missing. Existing content is kept.
func (fo *FileOps) Touch(p pathutil.Path) error {
	file, err := fo.FS.OpenFile(p.Native(), os.O_WRONLY|os.O_CREATE, DefaultFilePermissions)
	if err != nil {
		return pkgerrors.New("touch", p.Display(), err)
	}

	if err := file.Close(); err != nil {
		return pkgerrors.New("close", p.Display(), err)
	}

	return nil
}

// Echo replaces the content of the file at p with text.
func (fo *FileOps) Echo(text string, p pathutil.Path) (err error) {
	file, err := fo.Create(p)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = pkgerrors.New("close", p.Display(), closeErr)
		}
	}()

	return WriteAll(file, []byte(text))
}
