package resources

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Read returns the contents of the resource file. A file that does not exist
// is not an error and results in an empty string
func Read(filename string) (string, error) {
	pth, err := JoinPath(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Open(pth)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Write replaces the contents of the resource file. The content is written to
// a temporary file first so an interrupted write never leaves a partial file
func Write(filename string, content string) error {
	pth, err := JoinPath(filename)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(pth), filepath.Base(pth)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	n, err := f.WriteString(content)
	if err == nil && n != len(content) {
		err = fmt.Errorf("content not completely written")
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, pth)
}
