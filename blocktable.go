package sfs

// blockTable is a single global table mapping each data block to
// BlockIdxEmpty, BlockIdxEnd, or the index of its successor block. It
// is the one array that simultaneously encodes allocation and
// chaining.
type blockTable struct {
	dev Device
}

// next returns the chain successor stored for block b.
func (t *blockTable) next(b uint32) (uint32, error) {
	buf := make([]byte, 4)
	if err := t.dev.ReadAt(buf, blockTableSlotOffset(b)); err != nil {
		return 0, err
	}
	return byteOrder.Uint32(buf), nil
}

// setNext writes the chain successor for block b.
func (t *blockTable) setNext(b, v uint32) error {
	buf := make([]byte, 4)
	byteOrder.PutUint32(buf, v)
	return t.dev.WriteAt(buf, blockTableSlotOffset(b))
}

// findFree scans slots in index order and returns the first whose
// successor equals BlockIdxEmpty, or BlockIdxEnd when none exists.
// Deterministic: always the lowest free index. It does not reserve
// the slot; the caller must set its successor before calling findFree
// again, or risk getting the same index back.
func (t *blockTable) findFree() (uint32, error) {
	for i := uint32(0); i < BlockTblNEntries; i++ {
		v, err := t.next(i)
		if err != nil {
			return 0, err
		}
		if v == BlockIdxEmpty {
			return i, nil
		}
	}
	return BlockIdxEnd, nil
}

// freeChain resets every slot along the chain starting at head to
// BlockIdxEmpty. A head of BlockIdxEnd (empty regular file) frees
// nothing.
func (t *blockTable) freeChain(head uint32) error {
	blk := head
	for blk != BlockIdxEnd && blk != BlockIdxEmpty {
		next, err := t.next(blk)
		if err != nil {
			return err
		}
		if err := t.setNext(blk, BlockIdxEmpty); err != nil {
			return err
		}
		blk = next
	}
	return nil
}

// zeroBlock writes BlockSize zero bytes to data block b, so every
// slot it may later hold directory entries for reads back as EMPTY
// (invariant 5).
func (t *blockTable) zeroBlock(b uint32) error {
	return t.dev.WriteAt(make([]byte, BlockSize), blockDataOffset(b, 0))
}
