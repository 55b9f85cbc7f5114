package demo

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/joe/fstour/pkg/errors"
	"github.com/joe/fstour/pkg/fileops"
)

// LoremIpsum is the text written by the create step.
const LoremIpsum = `Lorem ipsum dolor sit amet, consectetur adipisicing elit, sed do eiusmod
tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam,
quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo
consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse
cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non
proident, sunt in culpa qui officia deserunt mollit anim id est laborum.
`

// Step is one named operation of the demonstration. Run prints its detail
// through the environment's logger and returns a one-line summary.
type Step struct {
	Name        string
	Description string
	Run         func(ctx context.Context, env *Env) (string, error)
}

// DefaultSteps returns the full demonstration in order.
func DefaultSteps() []Step {
	return []Step{
		{"path", "join path segments", stepPath},
		{"open", "open a file and read it", stepOpen},
		{"create", "create a file and write to it", stepCreate},
		{"lines", "read a file line by line", stepLines},
		{"mkdir", "`mkdir a`", stepMkdir},
		{"echo", "`echo hello > a/b.txt`", stepEcho},
		{"mkdir-all", "`mkdir -p a/c/d`", stepMkdirAll},
		{"touch", "`touch a/c/e.txt`", stepTouch},
		{"symlink", "`ln -s ../b.txt a/c/b.txt`", stepSymlink},
		{"cat", "`cat a/c/b.txt`", stepCat},
		{"ls", "`ls a`", stepList},
		{"walk", "walk the workspace and find **/*.txt", stepWalk},
		{"rm", "`rm a/c/e.txt`", stepRemoveFile},
		{"rmdir", "`rmdir a/c/d`", stepRemoveDir},
	}
}

// StepNames returns the names of the default steps in order.
func StepNames() []string {
	steps := DefaultSteps()

	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.Name
	}

	return names
}

// SelectSteps returns the named default steps in the given order. An empty
// list selects every step.
func SelectSteps(names []string) ([]Step, error) {
	if len(names) == 0 {
		return DefaultSteps(), nil
	}

	byName := make(map[string]Step)
	for _, step := range DefaultSteps() {
		byName[step.Name] = step
	}

	selected := make([]Step, 0, len(names))

	for _, name := range names {
		step, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownStep, name, strings.Join(StepNames(), ", "))
		}

		selected = append(selected, step)
	}

	return selected, nil
}

func stepPath(_ context.Context, env *Env) (string, error) {
	newPath := env.Root.Join("a").Join("b")

	// A path that is not valid UTF-8 has no text form; this driver treats
	// that as a failure rather than printing a lossy rendering.
	text, ok := newPath.Text()
	if !ok {
		return "", pkgerrors.WithKind("path", newPath.Display(), pkgerrors.KindInvalidData, pkgerrors.ErrInvalidData)
	}

	env.Out.Printf("new path is %s\n", text)
	env.Out.Printf("display: %s\n", env.Root.Display())

	return "new path is " + text, nil
}

func stepOpen(_ context.Context, env *Env) (string, error) {
	hello := env.Path("hello.txt")

	if err := env.Ops.Echo("Hello World!\n", hello); err != nil {
		return "", err
	}

	file, err := env.Ops.Open(hello)
	if err != nil {
		return "", err
	}

	defer func() {
		_ = file.Close()
	}()

	content, err := fileops.ReadAll(file)
	if err != nil {
		return "", err
	}

	env.Out.Printf("%s contents:\n%s", hello, content)

	return fmt.Sprintf("read %d bytes from %s", len(content), hello), nil
}

func stepCreate(_ context.Context, env *Env) (string, error) {
	lorem := env.Path("lorem_ipsum.txt")

	file, err := env.Ops.Create(lorem)
	if err != nil {
		return "", err
	}

	if err := fileops.WriteAll(file, []byte(LoremIpsum)); err != nil {
		_ = file.Close()
		return "", err
	}

	if err := file.Close(); err != nil {
		return "", pkgerrors.New("close", lorem.Display(), err)
	}

	return "successfully wrote " + lorem.Display(), nil
}

func stepLines(ctx context.Context, env *Env) (string, error) {
	lines, err := env.Ops.ReadLines(env.Path("lorem_ipsum.txt"))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = lines.Close()
	}()

	var (
		count    int
		firstErr error
	)

	for line, err := range lines.All() {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		count++

		if err != nil {
			env.Out.Warnf("line %d: %v", count, err)

			if firstErr == nil {
				firstErr = err
			}

			continue
		}

		env.Out.Printf("%2d: %s\n", count, line)
	}

	if firstErr != nil {
		return "", firstErr
	}

	return fmt.Sprintf("read %d lines", count), nil
}

func stepMkdir(_ context.Context, env *Env) (string, error) {
	dir := env.Path("a")

	if err := env.Ops.CreateDir(dir); err != nil {
		return "", err
	}

	return "created " + dir.Display(), nil
}

func stepEcho(_ context.Context, env *Env) (string, error) {
	file := env.Path("a", "b.txt")

	if err := env.Ops.Echo("hello", file); err != nil {
		return "", err
	}

	return "wrote " + file.Display(), nil
}

func stepMkdirAll(_ context.Context, env *Env) (string, error) {
	dir := env.Path("a", "c", "d")

	if err := env.Ops.CreateDirAll(dir); err != nil {
		return "", err
	}

	return "created " + dir.Display(), nil
}

func stepTouch(_ context.Context, env *Env) (string, error) {
	file := env.Path("a", "c", "e.txt")

	if err := env.Ops.Touch(file); err != nil {
		return "", err
	}

	return "touched " + file.Display(), nil
}

func stepSymlink(_ context.Context, env *Env) (string, error) {
	link := env.Path("a", "c", "b.txt")

	if err := env.Ops.Symlink("../b.txt", link); err != nil {
		return "", err
	}

	return "linked " + link.Display() + " -> ../b.txt", nil
}

func stepCat(_ context.Context, env *Env) (string, error) {
	file := env.Path("a", "c", "b.txt")
	if !env.Ops.SupportsSymlinks() {
		env.Out.Warnf("no symbolic links on this backend; reading the link target instead")

		file = env.Path("a", "b.txt")
	}

	content, err := env.Ops.Cat(file)
	if err != nil {
		return "", err
	}

	env.Out.Printf("> %s\n", content)

	return fmt.Sprintf("read %d bytes from %s", len(content), file), nil
}

func stepList(_ context.Context, env *Env) (string, error) {
	entries, err := env.Ops.ListDir(env.Path("a"))
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		env.Out.Printf("> %s\n", entry.Path)

		if _, err := entry.Info(); err != nil {
			env.Out.Warnf("%v", err)
		}
	}

	return fmt.Sprintf("%d entries", len(entries)), nil
}

func stepWalk(_ context.Context, env *Env) (string, error) {
	entries, err := env.Ops.Walk(env.Root)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		suffix := ""

		switch {
		case entry.IsDir:
			suffix = "/"
		case entry.IsSymlink:
			suffix = "@"
		}

		env.Out.Printf("%s%s%s\n", strings.Repeat("  ", entry.Depth-1), entry.Path.Base(), suffix)
	}

	matches, err := env.Ops.Find(env.Root, "**/*.txt")
	if err != nil {
		return "", err
	}

	for _, match := range matches {
		env.Out.Printf("found %s\n", match.RelativePath)
	}

	return fmt.Sprintf("%d entries, %d text files", len(entries), len(matches)), nil
}

func stepRemoveFile(_ context.Context, env *Env) (string, error) {
	file := env.Path("a", "c", "e.txt")

	if err := env.Ops.RemoveFile(file); err != nil {
		return "", err
	}

	return "removed " + file.Display(), nil
}

func stepRemoveDir(_ context.Context, env *Env) (string, error) {
	dir := env.Path("a", "c", "d")

	if err := env.Ops.RemoveDir(dir); err != nil {
		return "", err
	}

	return "removed " + dir.Display(), nil
}
