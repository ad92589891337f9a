package sfs

import "encoding/binary"

// On-disk layout constants. Sizes and offsets are fixed at compile time.
const (
	BlockSize   = 256
	FilenameMax = 24

	entrySize        = FilenameMax + 4 + 4 // filename + first_block + size
	EntriesPerBlock  = BlockSize / entrySize // == 8, by construction
	RootDirNEntries  = 128
	BlockTblNEntries = 1024
	DirNEntries      = EntriesPerBlock * 2 // total capacity of the two-block chain Mkdir allocates

	BlockTblOff = 1024
	rootDirSize = RootDirNEntries * entrySize
	RootDirOff  = BlockTblOff + BlockTblNEntries*4
	DataOff     = RootDirOff + rootDirSize
)

// Reserved block-chain-table sentinel values. Never valid block indices.
const (
	BlockIdxEmpty uint32 = 0xFFFFFFFF
	BlockIdxEnd   uint32 = 0xFFFFFFFE
)

// Packed size field layout: high bit flags a directory, the rest is a
// byte length for regular files.
const (
	DirectoryFlag uint32 = 1 << 31
	SizeMask      uint32 = DirectoryFlag - 1
)

var byteOrder = binary.LittleEndian

// Entry is a fixed-width directory entry record: a filename, the first
// block of its content chain, and a packed size/flag field.
type Entry struct {
	Filename [FilenameMax]byte
	First    uint32
	Size     uint32
}

// Empty reports whether this slot holds no entry (invariant 3: a slot
// is EMPTY iff its filename's first byte is zero).
func (e *Entry) Empty() bool {
	return e.Filename[0] == 0
}

// IsDir reports whether the entry's DIRECTORY flag is set.
func (e *Entry) IsDir() bool {
	return e.Size&DirectoryFlag != 0
}

// FileSize returns the byte length recorded for a regular file entry.
// It is meaningless for directories, which always report size 0 over
// the operation interface.
func (e *Entry) FileSize() uint32 {
	return e.Size & SizeMask
}

// Name returns the entry's filename with the zero padding trimmed.
func (e *Entry) Name() string {
	n := 0
	for n < len(e.Filename) && e.Filename[n] != 0 {
		n++
	}
	return string(e.Filename[:n])
}

// setName zero-pads name into the fixed filename field. Callers must
// validate len(name) <= FilenameMax-1 first.
func (e *Entry) setName(name string) {
	for i := range e.Filename {
		e.Filename[i] = 0
	}
	copy(e.Filename[:], name)
}

// newFileEntry builds an empty-content regular file entry.
func newFileEntry(name string) Entry {
	var e Entry
	e.setName(name)
	e.First = BlockIdxEnd
	e.Size = 0
	return e
}

// newDirEntry builds a directory entry pointing at chain head first.
func newDirEntry(name string, first uint32) Entry {
	var e Entry
	e.setName(name)
	e.First = first
	e.Size = DirectoryFlag
	return e
}

// marshal encodes the entry in its on-disk byte order. The only place
// byte order appears; callers never see it.
func (e *Entry) marshal() []byte {
	buf := make([]byte, entrySize)
	copy(buf, e.Filename[:])
	byteOrder.PutUint32(buf[FilenameMax:], e.First)
	byteOrder.PutUint32(buf[FilenameMax+4:], e.Size)
	return buf
}

// unmarshal decodes an entry from its on-disk representation.
func (e *Entry) unmarshal(buf []byte) {
	copy(e.Filename[:], buf[:FilenameMax])
	e.First = byteOrder.Uint32(buf[FilenameMax:])
	e.Size = byteOrder.Uint32(buf[FilenameMax+4:])
}

// rootSlotOffset returns the absolute byte offset of root directory slot i.
func rootSlotOffset(i int) int64 {
	return RootDirOff + int64(i)*entrySize
}

// blockSlotOffset returns the absolute byte offset of slot i within
// data block blk.
func blockSlotOffset(blk uint32, i int) int64 {
	return DataOff + int64(blk)*BlockSize + int64(i)*entrySize
}

// blockDataOffset returns the absolute byte offset of byte off within
// data block blk.
func blockDataOffset(blk uint32, off int) int64 {
	return DataOff + int64(blk)*BlockSize + int64(off)
}

// blockTableSlotOffset returns the absolute byte offset of block
// table slot b.
func blockTableSlotOffset(b uint32) int64 {
	return BlockTblOff + int64(b)*4
}
