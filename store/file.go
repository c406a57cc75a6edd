package store

import (
	"errors"
	"io/fs"
	"kpair/peer"
	"os"
	"path/filepath"
	"sync"
)

//go:generate msgp -unexported -io=false

//msgp:tuple _Entry
type _Entry struct {
	Remote string
	Key    []byte
}

//msgp:tuple _FileData
type _FileData struct {
	Version uint8
	Entries []_Entry
}

const fileVersion = 1

var ErrFileVersion = errors.New("store: unsupported file version")

// File is a Mem persisted to a single file. Every change rewrites the file
// atomically.
type File struct {
	*Mem
	path string

	mu sync.Mutex
}

// OpenFile loads path, which may not exist yet.
func OpenFile(path string) (*File, error) {
	f := &File{Mem: NewMem(), path: path}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, err
	}

	var data _FileData
	if _, err := data.UnmarshalMsg(b); err != nil {
		return nil, err
	}
	if data.Version != fileVersion {
		return nil, ErrFileVersion
	}
	for _, e := range data.Entries {
		id, err := peer.Decode(e.Remote)
		if err != nil {
			return nil, err
		}
		if err := f.Mem.SaveKey(id, e.Key); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *File) Path() string { return f.path }

func (f *File) SaveKey(remote peer.ID, key []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, existed, _ := f.Mem.LoadKey(remote)
	if err := f.Mem.SaveKey(remote, key); err != nil {
		return err
	}
	if err := f.flushLocked(); err != nil {
		f.restore(remote, prev, existed)
		return err
	}
	return nil
}

func (f *File) Forget(remote peer.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, existed, _ := f.Mem.LoadKey(remote)
	f.Mem.Forget(remote)
	if err := f.flushLocked(); err != nil {
		f.restore(remote, prev, existed)
		return err
	}
	return nil
}

// restore puts back the entry of remote as it was before a failed write, so
// memory never holds what the file does not.
func (f *File) restore(remote peer.ID, prev []byte, existed bool) {
	if existed {
		f.Mem.SaveKey(remote, prev)
	} else {
		f.Mem.Forget(remote)
	}
}

func (f *File) flushLocked() error {
	data := _FileData{Version: fileVersion}
	for _, id := range f.Mem.Remotes() {
		key, ok, _ := f.Mem.LoadKey(id)
		if !ok {
			continue
		}
		data.Entries = append(data.Entries, _Entry{Remote: id.String(), Key: key})
	}
	b, err := data.MarshalMsg(nil)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
