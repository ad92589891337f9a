package sfs

import "io"

// Inconsistency describes one violation found by Check. Check never
// repairs anything; it only reports.
type Inconsistency struct {
	Kind string
	Path string
	Detail string
}

func (i Inconsistency) String() string {
	if i.Path == "" {
		return i.Kind + ": " + i.Detail
	}
	return i.Kind + " (" + i.Path + "): " + i.Detail
}

// checker accumulates state across the walk: which blocks have been
// claimed by a chain already, so a second chain claiming the same
// block is caught as the "reachable from two distinct chains"
// violation.
type checker struct {
	v       *Volume
	owner   map[uint32]string // block -> path of the chain that first claimed it
	results []Inconsistency
}

// Check walks every reachable directory and file chain from the root
// and reports every invariant violation it finds. It never mutates the
// image.
func Check(v *Volume) []Inconsistency {
	c := &checker{v: v, owner: make(map[uint32]string)}
	c.walkDir(rootRef, "/")
	c.findLeaks()
	return c.results
}

// findLeaks reports blocks the chain table marks in-use that the
// directory walk never reached: the table-half of a removal that
// didn't fully free its chain.
func (c *checker) findLeaks() {
	for b := uint32(0); b < BlockTblNEntries; b++ {
		if _, owned := c.owner[b]; owned {
			continue
		}
		next, err := c.v.tbl.next(b)
		if err != nil {
			c.fail("read-error", "", err.Error())
			continue
		}
		if next != BlockIdxEmpty {
			c.fail("leaked-block", "", "block not reachable from any chain but not EMPTY")
		}
	}
}

func (c *checker) fail(kind, path, detail string) {
	c.results = append(c.results, Inconsistency{Kind: kind, Path: path, Detail: detail})
}

func (c *checker) claimChain(head uint32, path string) {
	blk := head
	for blk != BlockIdxEnd && blk != BlockIdxEmpty {
		if owner, seen := c.owner[blk]; seen {
			c.fail("shared-block", path, "block shared with "+owner)
			return
		}
		c.owner[blk] = path
		next, err := c.v.tbl.next(blk)
		if err != nil {
			c.fail("read-error", path, err.Error())
			return
		}
		blk = next
	}
}

func (c *checker) walkDir(dir dirRef, path string) {
	names := make(map[string]bool)
	w := c.v.walkerFor(dir.isRoot, dir.first)
	for {
		_, e, err := w.next()
		if err == io.EOF {
			return
		}
		if err != nil {
			c.fail("read-error", path, err.Error())
			return
		}
		if e.Empty() {
			continue
		}

		childPath := joinPath(path, e.Name())

		if names[e.Name()] {
			c.fail("duplicate-name", path, "duplicate entry "+e.Name())
		}
		names[e.Name()] = true

		if e.First != BlockIdxEnd {
			if e.First >= BlockTblNEntries {
				c.fail("bad-first-block", childPath, "first_block out of range")
				continue
			}
			c.claimChain(e.First, childPath)
		}

		if e.IsDir() {
			c.walkDir(dirRef{first: e.First}, childPath)
		}
	}
}

func joinPath(parent, name string) string {
	if parent == "/" {
		return "/" + name
	}
	return parent + "/" + name
}
