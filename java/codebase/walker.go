package codebase

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Walker selects the Java files below a root directory.
type Walker struct {
	root      string
	includes  []string
	excludes  []string
	gitignore *ignore.GitIgnore
}

func NewWalker(root string, opts Options) *Walker {
	includes := opts.Includes
	if len(includes) == 0 {
		includes = []string{"**/*.java"}
	}
	w := &Walker{
		root:     root,
		includes: includes,
		excludes: opts.Excludes,
	}
	if opts.Gitignore {
		gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
		if err == nil {
			w.gitignore = gi
		} else if !os.IsNotExist(err) {
			log.Warningf("ignoring unreadable .gitignore in %s: %s", root, err)
		}
	}
	return w
}

// Walk returns the selected files in lexical order. A root that is a file
// is returned as is.
func (w *Walker) Walk() ([]string, error) {
	info, err := os.Stat(w.root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{w.root}, nil
	}

	var files []string
	err = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warningf("walk %s: %s", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == w.root {
			return nil
		}
		rel, err := filepath.Rel(w.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if w.excluded(rel+"/") || w.ignored(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if w.Selects(rel) {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}

// Selects reports whether the slash separated path rel, relative to the
// root, is one of the walker's files.
func (w *Walker) Selects(rel string) bool {
	return w.included(rel) && !w.excluded(rel) && !w.ignored(rel)
}

func (w *Walker) included(rel string) bool {
	return matchAny(w.includes, rel)
}

func (w *Walker) excluded(rel string) bool {
	return matchAny(w.excludes, rel)
}

func (w *Walker) ignored(rel string) bool {
	return w.gitignore != nil && w.gitignore.MatchesPath(rel)
}

func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}
