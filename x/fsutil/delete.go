package fsutil

import "os"

// DeleteFile removes a file, succeeding when it does not exist.
func DeleteFile(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// DeleteDir removes a directory tree, succeeding when it does not
// exist.
func DeleteDir(path string) error {
	return os.RemoveAll(path)
}
