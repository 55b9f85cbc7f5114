package fileops

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	pkgerrors "github.com/joe/fstour/pkg/errors"
	"github.com/joe/fstour/pkg/filesystem"
	"github.com/joe/fstour/pkg/pathutil"
)

// Open opens the file at p for reading. The caller owns the handle.
func (fo *FileOps) Open(p pathutil.Path) (filesystem.File, error) {
	file, err := fo.FS.Open(p.Native())
	if err != nil {
		return nil, pkgerrors.New("open", p.Display(), err)
	}

	return file, nil
}

// ReadAll reads everything remaining in r as text.
// Content that is not valid UTF-8 fails with KindInvalidData; read failures
// keep the kind of their cause.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", pkgerrors.New("read", nameOf(r), err)
	}

	if !utf8.Valid(data) {
		return "", pkgerrors.WithKind("read", nameOf(r), pkgerrors.KindInvalidData, pkgerrors.ErrInvalidData)
	}

	return string(data), nil
}

// Cat returns the whole content of the file at p.
func (fo *FileOps) Cat(p pathutil.Path) (string, error) {
	file, err := fo.Open(p)
	if err != nil {
		return "", err
	}

	defer func() {
		_ = file.Close()
	}()

	return ReadAll(file)
}

// ReadLines opens the file at p and returns a lazy sequence over its lines.
// Open failures are returned directly. The sequence must be closed.
func (fo *FileOps) ReadLines(p pathutil.Path) (*LineSequence, error) {
	file, err := fo.Open(p)
	if err != nil {
		return nil, err
	}

	return NewLineSequence(file), nil
}

// LineSequence is a forward-only, single-pass iterator over the lines of a
// handle it owns.
//
// Lines are split on '\n' and a trailing '\r' is removed. A final line
// without a newline is still produced; an empty input produces nothing.
// A line that is not valid UTF-8 becomes an element whose Err is
// KindInvalidData, and iteration continues. A read failure becomes one
// error element and ends the sequence.
type LineSequence struct {
	closer io.Closer
	reader *bufio.Reader
	name   string

	line   string
	err    error
	lineNo int
	done   bool
}

// NewLineSequence wraps rc in a line iterator. Closing the sequence closes rc.
func NewLineSequence(rc io.ReadCloser) *LineSequence {
	return &LineSequence{
		closer: rc,
		reader: bufio.NewReader(rc),
		name:   nameOf(rc),
	}
}

// Next advances to the next element. It returns false once the sequence is
// exhausted or closed, and keeps returning false after that.
func (s *LineSequence) Next() bool {
	if s.done {
		return false
	}

	line, err := s.reader.ReadString('\n')

	switch {
	case errors.Is(err, io.EOF):
		s.done = true

		if line == "" {
			s.line, s.err = "", nil

			return false
		}
	case err != nil:
		s.done = true
		s.line = ""
		s.err = pkgerrors.New("read", s.name, err)

		return true
	}

	s.lineNo++

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if !utf8.ValidString(line) {
		s.line = ""
		s.err = pkgerrors.WithKind("read", s.position(), pkgerrors.KindInvalidData, pkgerrors.ErrInvalidData)

		return true
	}

	s.line, s.err = line, nil

	return true
}

// Text returns the current line. It is empty for error elements.
func (s *LineSequence) Text() string {
	return s.line
}

// Err returns the error of the current element, or nil.
func (s *LineSequence) Err() error {
	return s.err
}

// All returns the remaining elements as an iterator.
func (s *LineSequence) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for s.Next() {
			if !yield(s.Text(), s.Err()) {
				return
			}
		}
	}
}

// Close releases the handle. It may be called before the sequence is
// exhausted, and more than once.
func (s *LineSequence) Close() error {
	s.done = true

	if s.closer == nil {
		return nil
	}

	closer := s.closer
	s.closer = nil

	if err := closer.Close(); err != nil {
		return pkgerrors.New("close", s.name, err)
	}

	return nil
}

func (s *LineSequence) position() string {
	if s.name == "" {
		return "line " + strconv.Itoa(s.lineNo)
	}

	return s.name + ":" + strconv.Itoa(s.lineNo)
}

// nameOf returns the file name behind r when it has one.
func nameOf(r any) string {
	if named, ok := r.(interface{ Name() string }); ok {
		return named.Name()
	}

	return ""
}
