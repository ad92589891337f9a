package sfs

import "testing"

func TestEntryMarshalRoundTrip(t *testing.T) {
	e := newFileEntry("hello.txt")
	e.First = 7
	e.Size = 42

	buf := e.marshal()
	var got Entry
	got.unmarshal(buf)

	if got.Name() != "hello.txt" {
		t.Errorf("Name() = %q, want %q", got.Name(), "hello.txt")
	}
	if got.First != 7 {
		t.Errorf("First = %d, want 7", got.First)
	}
	if got.FileSize() != 42 {
		t.Errorf("FileSize() = %d, want 42", got.FileSize())
	}
}

func TestEntryEmpty(t *testing.T) {
	var e Entry
	if !e.Empty() {
		t.Error("zero-value entry should report Empty")
	}
	e.setName("x")
	if e.Empty() {
		t.Error("named entry should not report Empty")
	}
}

func TestEntryDirectoryFlagDoesNotLeakIntoSize(t *testing.T) {
	e := Entry{Size: DirectoryFlag | 5}
	if !e.IsDir() {
		t.Error("expected IsDir")
	}
	if e.FileSize() != 5 {
		t.Errorf("FileSize with DIRECTORY flag set = %d, want 5", e.FileSize())
	}
}

func TestNewDirEntry(t *testing.T) {
	e := newDirEntry("sub", 3)
	if !e.IsDir() {
		t.Error("newDirEntry should set the DIRECTORY flag")
	}
	if e.First != 3 {
		t.Errorf("First = %d, want 3", e.First)
	}
	if e.Name() != "sub" {
		t.Errorf("Name() = %q, want %q", e.Name(), "sub")
	}
}

func TestNameTooLongValidation(t *testing.T) {
	ok := make([]byte, FilenameMax-1)
	for i := range ok {
		ok[i] = 'a'
	}
	if err := validateNewName(string(ok)); err != nil {
		t.Errorf("name of length FilenameMax-1 should succeed, got %v", err)
	}

	bad := make([]byte, FilenameMax)
	for i := range bad {
		bad[i] = 'a'
	}
	if err := validateNewName(string(bad)); err == nil {
		t.Error("name of length FilenameMax should fail with NAMETOOLONG")
	}
}
