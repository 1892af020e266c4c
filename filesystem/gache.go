package filesystem

import (
	"io"
	"os"
)

// GacheFs satisfies gache.FileSystem on top of the active backend, so disk caches
// (channel handles, pasted URL history) also live in MemMapFs during tests.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
