package vuidcheck

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/n2code/vuidcheck/internal"
	"github.com/n2code/vuidcheck/internal/output"
)

const rootScheme = "root:" + string(filepath.Separator) + string(filepath.Separator)

// displayablePath shortens artifact paths for the report.
func (c *checker) displayablePath(path string) string {
	pleasant := pleasantPath(mustAbsFilepath(path), mustAbsFilepath(c.settings.Root), c.wd)
	if strings.HasPrefix(pleasant, rootScheme) {
		pleasant = strings.Replace(pleasant, rootScheme, c.printer.Sprintf("%s%s%s", output.Dim, rootScheme, output.Reset), 1)
	}
	return pleasant
}

const dot string = "."
const dirSeparator = string(filepath.Separator)
const doubleDot = dot + dot
const doubleDotDirSeparator = doubleDot + dirSeparator

func isChildOf(child string, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	internal.AssertNoError(err, "paths should both be absolute")
	return !(rel == dot || rel == doubleDot || strings.HasPrefix(rel, doubleDotDirSeparator))
}

// pleasantPath turns an absolute path into something easily understandable from the current context.
// If the working directory is inside the repository root (or is the root) a relative path is emitted.
// If the working directory is outside the root paths inside the root are anchored at the root and the root is abbreviated.
// Any other path is reflected unchanged.
func pleasantPath(absolute string, root string, wd string) string {
	if wdOutsideRoot := wd != root && !isChildOf(wd, root); wdOutsideRoot {
		if !isChildOf(absolute, root) {
			return absolute
		}
		anchored, _ := filepath.Rel(root, absolute) //error impossible because both are rooted
		return rootScheme + anchored
	}
	relative, _ := filepath.Rel(wd, absolute) //error impossible because both are rooted
	return relative
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return wd
}

// mustAbsFilepath calls filepath.Abs and asserts that it is successful
func mustAbsFilepath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	return abs
}
