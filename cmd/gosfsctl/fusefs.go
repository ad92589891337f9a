package main

import (
	"context"
	"os"
	"syscall"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"

	"github.com/cerrnl/gosfs"
)

// fsNode is a FUSE node bound to one path inside a mounted sfs.Volume.
// It carries no cached state of its own: every operation re-resolves
// path against the volume, mirroring the way sfs's own operation layer
// re-walks the tree on every call rather than caching inode state.
type fsNode struct {
	fs.Inode

	vol  *sfs.Volume
	path string
}

var (
	_ fs.NodeLookuper  = (*fsNode)(nil)
	_ fs.NodeGetattrer = (*fsNode)(nil)
	_ fs.NodeReaddirer = (*fsNode)(nil)
	_ fs.NodeOpener    = (*fsNode)(nil)
	_ fs.NodeReader    = (*fsNode)(nil)
	_ fs.NodeWriter    = (*fsNode)(nil)
	_ fs.NodeCreater   = (*fsNode)(nil)
	_ fs.NodeMkdirer   = (*fsNode)(nil)
	_ fs.NodeUnlinker  = (*fsNode)(nil)
	_ fs.NodeRmdirer   = (*fsNode)(nil)
	_ fs.NodeSetattrer = (*fsNode)(nil)
)

func childPath(parent, name string) string {
	if parent == "/" {
		return "/" + name
	}
	return parent + "/" + name
}

func (n *fsNode) child(path string, isDir bool) *fs.Inode {
	mode := uint32(syscall.S_IFREG)
	if isDir {
		mode = syscall.S_IFDIR
	}
	return n.NewInode(context.Background(), &fsNode{vol: n.vol, path: path}, fs.StableAttr{Mode: mode})
}

func fillAttrOut(attr sfs.Attr, out *fuse.Attr) {
	out.Mode = sfs.ModeToUnix(attr.Mode)
	out.Nlink = attr.Nlink
	out.Size = attr.Size
	out.Uid = attr.Uid
	out.Gid = attr.Gid
	out.Atime = uint64(attr.Atime.Unix())
	out.Atimensec = uint32(attr.Atime.Nanosecond())
	out.Mtime = uint64(attr.Mtime.Unix())
	out.Mtimensec = uint32(attr.Mtime.Nanosecond())
	out.Ctime = uint64(attr.Ctime.Unix())
	out.Ctimensec = uint32(attr.Ctime.Nanosecond())
}

func (n *fsNode) Getattr(ctx context.Context, f fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	attr, err := n.vol.Getattr(n.path)
	if err != nil {
		return sfs.Errno(err)
	}
	fillAttrOut(attr, &out.Attr)
	return 0
}

func (n *fsNode) Lookup(ctx context.Context, name string, out *fuse.EntryOut) (*fs.Inode, syscall.Errno) {
	cp := childPath(n.path, name)
	attr, err := n.vol.Getattr(cp)
	if err != nil {
		return nil, sfs.Errno(err)
	}
	fillAttrOut(attr, &out.Attr)
	return n.child(cp, attr.Mode.IsDir()), 0
}

func (n *fsNode) Readdir(ctx context.Context) (fs.DirStream, syscall.Errno) {
	var entries []fuse.DirEntry
	err := n.vol.Readdir(n.path, func(name string) {
		entries = append(entries, fuse.DirEntry{Name: name})
	})
	if err != nil {
		return nil, sfs.Errno(err)
	}
	return fs.NewListDirStream(entries), 0
}

func (n *fsNode) Open(ctx context.Context, flags uint32) (fs.FileHandle, uint32, syscall.Errno) {
	return nil, fuse.FOPEN_KEEP_CACHE, 0
}

func (n *fsNode) Read(ctx context.Context, f fs.FileHandle, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	got, err := n.vol.Read(n.path, dest, off)
	if err != nil {
		return nil, sfs.Errno(err)
	}
	return fuse.ReadResultData(dest[:got]), 0
}

func (n *fsNode) Write(ctx context.Context, f fs.FileHandle, data []byte, off int64) (uint32, syscall.Errno) {
	written, err := n.vol.Write(n.path, data, off)
	if err != nil {
		return 0, sfs.Errno(err)
	}
	return uint32(written), 0
}

func (n *fsNode) Create(ctx context.Context, name string, flags uint32, mode uint32, out *fuse.EntryOut) (*fs.Inode, fs.FileHandle, uint32, syscall.Errno) {
	cp := childPath(n.path, name)
	if err := n.vol.Create(cp, os.FileMode(mode&0777)); err != nil {
		return nil, nil, 0, sfs.Errno(err)
	}
	attr, err := n.vol.Getattr(cp)
	if err != nil {
		return nil, nil, 0, sfs.Errno(err)
	}
	fillAttrOut(attr, &out.Attr)
	return n.child(cp, false), nil, 0, 0
}

func (n *fsNode) Mkdir(ctx context.Context, name string, mode uint32, out *fuse.EntryOut) (*fs.Inode, syscall.Errno) {
	cp := childPath(n.path, name)
	if err := n.vol.Mkdir(cp, os.FileMode(mode&0777)|os.ModeDir); err != nil {
		return nil, sfs.Errno(err)
	}
	attr, err := n.vol.Getattr(cp)
	if err != nil {
		return nil, sfs.Errno(err)
	}
	fillAttrOut(attr, &out.Attr)
	return n.child(cp, true), 0
}

func (n *fsNode) Unlink(ctx context.Context, name string) syscall.Errno {
	return sfs.Errno(n.vol.Unlink(childPath(n.path, name)))
}

func (n *fsNode) Rmdir(ctx context.Context, name string) syscall.Errno {
	return sfs.Errno(n.vol.Rmdir(childPath(n.path, name)))
}

func (n *fsNode) Setattr(ctx context.Context, f fs.FileHandle, in *fuse.SetAttrIn, out *fuse.AttrOut) syscall.Errno {
	if size, ok := in.GetSize(); ok {
		if err := n.vol.Truncate(n.path, int64(size)); err != nil {
			return sfs.Errno(err)
		}
	}
	attr, err := n.vol.Getattr(n.path)
	if err != nil {
		return sfs.Errno(err)
	}
	fillAttrOut(attr, &out.Attr)
	return 0
}
