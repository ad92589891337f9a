package sfs

import "log"

// Format writes a fresh, empty sfs image to dev: every block table slot
// set to BlockIdxEmpty and every root directory slot zeroed, satisfying
// invariant 5 (EMPTY reads back as all-zero) from the first byte. It does
// not touch the data region; blocks there are zeroed lazily as they're
// allocated, not up front.
func Format(dev Device) error {
	log.Printf("sfs: formatting image, %d block table entries, %d root entries", BlockTblNEntries, RootDirNEntries)

	empty := make([]byte, 4)
	byteOrder.PutUint32(empty, BlockIdxEmpty)
	for b := uint32(0); b < BlockTblNEntries; b++ {
		if err := dev.WriteAt(empty, blockTableSlotOffset(b)); err != nil {
			return err
		}
	}

	zero := make([]byte, rootDirSize)
	if err := dev.WriteAt(zero, RootDirOff); err != nil {
		return err
	}

	log.Printf("sfs: format complete")
	return nil
}

// ImageSize is the fixed total byte size of an sfs image under this
// build's layout constants: BLOCKTBL_NENTRIES is compiled in, not
// chosen per image, so there is exactly one valid image size. It is
// the size a caller should pass to CreateDevice before calling
// Format.
func ImageSize() int64 {
	return DataOff + int64(BlockTblNEntries)*BlockSize
}
