package sfs

import "testing"

// Mkdir when only one free block remains fails with NOSPC and leaves
// the chain table unchanged.
func TestMkdirOneFreeBlockFailsNoSpace(t *testing.T) {
	dev := newTestDevice(t)
	if err := Format(dev); err != nil {
		t.Fatal(err)
	}
	v := Open(dev)

	// Exhaust every block but one.
	for b := uint32(0); b < BlockTblNEntries-1; b++ {
		if err := v.tbl.setNext(b, BlockIdxEnd); err != nil {
			t.Fatal(err)
		}
	}
	lastFree := uint32(BlockTblNEntries - 1)

	before, err := v.tbl.next(lastFree)
	if err != nil {
		t.Fatal(err)
	}
	if before != BlockIdxEmpty {
		t.Fatalf("setup error: block %d should still be free", lastFree)
	}

	if err := v.Mkdir("/a", 0755); err != ErrNoSpace {
		t.Fatalf("Mkdir with one free block = %v, want ErrNoSpace", err)
	}

	after, err := v.tbl.next(lastFree)
	if err != nil {
		t.Fatal(err)
	}
	if after != BlockIdxEmpty {
		t.Errorf("failed mkdir should leave the last free block untouched, got 0x%x", after)
	}
}

// A Write that needs three more blocks but finds only one free must
// unchain and free the one it did manage to allocate, rather than
// leaving it dangling off the file's real chain.
func TestWriteGrowRollsBackOnPartialNoSpace(t *testing.T) {
	dev := newTestDevice(t)
	if err := Format(dev); err != nil {
		t.Fatal(err)
	}
	v := Open(dev)

	if err := v.Create("/f", 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := v.Write("/f", make([]byte, BlockSize), 0); err != nil {
		t.Fatal(err)
	}

	e, _, err := v.resolve("/f")
	if err != nil {
		t.Fatal(err)
	}
	fileBlock := e.First

	// Exhaust every block but one, leaving exactly enough for the
	// first of the three blocks this write needs, not the rest.
	var lastFree uint32 = BlockTblNEntries
	var reserved []uint32
	for b := uint32(0); b < BlockTblNEntries; b++ {
		if b == fileBlock {
			continue
		}
		next, err := v.tbl.next(b)
		if err != nil {
			t.Fatal(err)
		}
		if next != BlockIdxEmpty {
			continue
		}
		if lastFree == BlockTblNEntries {
			lastFree = b
			continue
		}
		if err := v.tbl.setNext(b, BlockIdxEnd); err != nil {
			t.Fatal(err)
		}
		reserved = append(reserved, b)
	}
	if lastFree == BlockTblNEntries {
		t.Fatal("setup error: expected exactly one free block left over")
	}

	// Writing BlockSize*2+1 bytes at offset BlockSize makes the file
	// BlockSize*3+1 bytes long, four blocks total, so growth needs three
	// more; only one is free.
	data := make([]byte, BlockSize*2+1)
	if _, err := v.Write("/f", data, BlockSize); err != ErrNoSpace {
		t.Fatalf("Write past available space = %v, want ErrNoSpace", err)
	}

	next, err := v.tbl.next(fileBlock)
	if err != nil {
		t.Fatal(err)
	}
	if next != BlockIdxEnd {
		t.Errorf("file's original block should still terminate the chain, got successor 0x%x", next)
	}

	freeAfter, err := v.tbl.next(lastFree)
	if err != nil {
		t.Fatal(err)
	}
	if freeAfter != BlockIdxEmpty {
		t.Errorf("block allocated then rolled back should be free again, got 0x%x", freeAfter)
	}

	// Release the blocks the setup reserved by hand, which no entry
	// owns, so Check only sees what the failed write left behind.
	for _, b := range reserved {
		if err := v.tbl.setNext(b, BlockIdxEmpty); err != nil {
			t.Fatal(err)
		}
	}
	if findings := Check(v); len(findings) != 0 {
		t.Errorf("Check found inconsistencies after a rolled-back grow: %v", findings)
	}
}
