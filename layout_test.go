package sfs_test

import (
	"testing"

	"github.com/cerrnl/gosfs"
)

func TestEntriesPerBlockIsEight(t *testing.T) {
	if sfs.EntriesPerBlock != 8 {
		t.Fatalf("EntriesPerBlock = %d, want 8 (this holds by construction from BlockSize/entrySize)", sfs.EntriesPerBlock)
	}
}
