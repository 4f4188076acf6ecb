package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// WriteFileAtomic writes data to path via a temp file in the same directory
// followed by a rename, so readers never observe a partial document.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// CopyFile streams src to dst, setting the given file mode on dst.
func CopyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// MoveToDir relocates path into targetDir, keeping its base name. When the
// path is already inside targetDir it is returned unchanged; when another
// item with the same name already exists there the move fails. Falls back to
// copy-and-remove when the rename crosses filesystems.
func MoveToDir(path, targetDir string) (string, error) {
	name := filepath.Base(path)
	targetPath := filepath.Join(targetDir, name)

	if filepath.Dir(path) == filepath.Clean(targetDir) {
		return path, nil
	}
	if _, err := os.Stat(targetPath); err == nil {
		return "", fmt.Errorf("can't move %q: another item with the same name already exists in %s", name, targetDir)
	}

	if err := os.Rename(path, targetPath); err != nil {
		if !errors.Is(err, unix.EXDEV) {
			return "", fmt.Errorf("move %q: %w", path, err)
		}
		info, statErr := os.Stat(path)
		if statErr != nil {
			return "", fmt.Errorf("move %q: %w", path, statErr)
		}
		if info.IsDir() {
			return "", fmt.Errorf("move %q: cannot move a directory across filesystems", path)
		}
		if err := CopyFile(path, targetPath, info.Mode().Perm()); err != nil {
			return "", fmt.Errorf("move %q: %w", path, err)
		}
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("remove original %q: %w", path, err)
		}
	}
	return targetPath, nil
}

// OriginURL reads the download origin recorded on a file by browsers and
// download tools, best-effort. Returns "" when the attribute is absent.
func OriginURL(path string) string {
	size, err := unix.Getxattr(path, "user.xdg.origin.url", nil)
	if err != nil || size <= 0 {
		return ""
	}
	buf := make([]byte, size)
	n, err := unix.Getxattr(path, "user.xdg.origin.url", buf)
	if err != nil || n <= 0 {
		return ""
	}
	return string(buf[:n])
}
