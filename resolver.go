package sfs

import (
	"fmt"
	"io"
	"strings"
)

// splitPath canonicalizes a slash-rooted path into its non-empty
// components: reject empty components (collapsing repeated slashes)
// and a trailing slash in one place, rather than leaking ad-hoc
// trimming into every operation.
func splitPath(path string) ([]string, error) {
	if path == "" || path[0] != '/' {
		return nil, fmt.Errorf("%w: path must start with /", ErrInvalid)
	}
	var parts []string
	for _, c := range strings.Split(path, "/") {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return parts, nil
}

// splitParent splits path into its parent path and final component.
func splitParent(path string) (parent, name string, err error) {
	parts, err := splitPath(path)
	if err != nil {
		return "", "", err
	}
	if len(parts) == 0 {
		return "", "", fmt.Errorf("%w: path has no final component", ErrInvalid)
	}
	name = parts[len(parts)-1]
	if len(parts) == 1 {
		return "/", name, nil
	}
	return "/" + strings.Join(parts[:len(parts)-1], "/"), name, nil
}

// dirRef identifies a directory to search: either the root, or a
// non-root directory's chain head block.
type dirRef struct {
	isRoot bool
	first  uint32
}

// rootRef is the well-known reference to the root directory.
var rootRef = dirRef{isRoot: true}

// findChild searches dir for an entry named name. The first matching
// slot wins; no two live entries in one directory ever share a name,
// so there's only ever one match to find.
func (v *Volume) findChild(dir dirRef, name string) (Entry, int64, bool, error) {
	w := v.walkerFor(dir.isRoot, dir.first)
	for {
		slot, e, err := w.next()
		if err == io.EOF {
			return Entry{}, 0, false, nil
		}
		if err != nil {
			return Entry{}, 0, false, err
		}
		if e.Empty() {
			continue
		}
		if e.Name() == name {
			return e, slot.off, true, nil
		}
	}
}

// resolveDir walks path component by component from the root,
// descending into directories as it goes. It returns the directory
// reference for path itself: useful for readdir and for resolving a
// parent directory by path.
func (v *Volume) resolveDir(path string) (dirRef, error) {
	if path == "/" {
		return rootRef, nil
	}
	e, _, err := v.resolve(path)
	if err != nil {
		return dirRef{}, err
	}
	if !e.IsDir() {
		return dirRef{}, ErrNotDir
	}
	return dirRef{first: e.First}, nil
}

// resolve walks path from the root directory, returning the matched
// entry and its on-disk slot address. The root itself has no entry
// record; callers must special case path == "/" before calling
// resolve.
func (v *Volume) resolve(path string) (Entry, int64, error) {
	parts, err := splitPath(path)
	if err != nil {
		return Entry{}, 0, err
	}
	if len(parts) == 0 {
		return Entry{}, 0, fmt.Errorf("%w: root has no entry record", ErrInvalid)
	}

	cur := rootRef
	var entry Entry
	var off int64
	for i, name := range parts {
		e, eoff, found, err := v.findChild(cur, name)
		if err != nil {
			return Entry{}, 0, err
		}
		if !found {
			return Entry{}, 0, ErrNotExist
		}
		last := i == len(parts)-1
		if !last {
			if !e.IsDir() {
				return Entry{}, 0, ErrNotDir
			}
			cur = dirRef{first: e.First}
			continue
		}
		entry, off = e, eoff
	}
	return entry, off, nil
}

// resolveParentDir resolves the parent directory of path, returning
// its dirRef and the final path component. The parent must exist and
// be a directory.
func (v *Volume) resolveParentDir(path string) (dirRef, string, error) {
	parentPath, name, err := splitParent(path)
	if err != nil {
		return dirRef{}, "", err
	}
	dir, err := v.resolveDir(parentPath)
	if err != nil {
		return dirRef{}, "", err
	}
	return dir, name, nil
}

// scanForSlot walks dir looking for a duplicate of name and the first
// empty slot, in one pass, the way create needs. If no
// empty slot exists after a full scan of dir's capacity, hasEmpty is
// false and the caller should fail NOSPC.
func (v *Volume) scanForSlot(dir dirRef, name string) (emptyOff int64, hasEmpty bool, dupOff int64, hasDup bool, err error) {
	w := v.walkerFor(dir.isRoot, dir.first)
	for {
		slot, e, werr := w.next()
		if werr == io.EOF {
			return emptyOff, hasEmpty, dupOff, hasDup, nil
		}
		if werr != nil {
			return 0, false, 0, false, werr
		}
		if e.Empty() {
			if !hasEmpty {
				emptyOff, hasEmpty = slot.off, true
			}
			continue
		}
		if e.Name() == name {
			dupOff, hasDup = slot.off, true
			return emptyOff, hasEmpty, dupOff, hasDup, nil
		}
	}
}
