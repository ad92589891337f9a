package sfs_test

import (
	"errors"
	"testing"

	"github.com/cerrnl/gosfs"
)

func TestResolveMissingComponent(t *testing.T) {
	v := newVolume(t)
	if _, err := v.Getattr("/nope"); !errors.Is(err, sfs.ErrNotExist) {
		t.Errorf("Getattr(missing) = %v, want ErrNotExist", err)
	}
}

func TestResolveThroughNonDirectory(t *testing.T) {
	v := newVolume(t)
	if err := v.Create("/f", 0644); err != nil {
		t.Fatal(err)
	}
	if err := v.Create("/f/g", 0644); !errors.Is(err, sfs.ErrNotDir) {
		t.Errorf("Create through a file component = %v, want ErrNotDir", err)
	}
}

func TestResolveRejectsMalformedPath(t *testing.T) {
	v := newVolume(t)
	if err := v.Create("relative", 0644); !errors.Is(err, sfs.ErrInvalid) {
		t.Errorf("Create(no leading slash) = %v, want ErrInvalid", err)
	}
}

func TestResolveNestedDirectories(t *testing.T) {
	v := newVolume(t)
	if err := v.Mkdir("/a", 0755); err != nil {
		t.Fatal(err)
	}
	if err := v.Mkdir("/a/b", 0755); err != nil {
		t.Fatal(err)
	}
	if err := v.Create("/a/b/c", 0644); err != nil {
		t.Fatal(err)
	}
	attr, err := v.Getattr("/a/b/c")
	if err != nil {
		t.Fatal(err)
	}
	if attr.Mode.IsDir() {
		t.Error("/a/b/c should not be a directory")
	}
}

func TestCreateDuplicateNameFails(t *testing.T) {
	v := newVolume(t)
	if err := v.Create("/dup", 0644); err != nil {
		t.Fatal(err)
	}
	if err := v.Create("/dup", 0644); !errors.Is(err, sfs.ErrExist) {
		t.Errorf("duplicate Create = %v, want ErrExist", err)
	}
}
