package preflight

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"

	"imdblist/internal/listfile"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSource verifies that a dump file exists and is readable. A missing
// source is not fatal to a run, but it is worth knowing about up front.
func CheckSource(name, path string) Result {
	result := Result{Name: name, Optional: true}
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		result.Detail = fmt.Sprintf("%s (missing: pass will be skipped)", path)
	case err != nil:
		result.Detail = fmt.Sprintf("%s (error: stat: %v)", path, err)
	case info.IsDir():
		result.Detail = fmt.Sprintf("%s (error: is a directory)", path)
	default:
		if err := unix.Access(path, unix.R_OK); err != nil {
			result.Detail = fmt.Sprintf("%s (error: not readable: %v)", path, err)
			break
		}
		result.Passed = true
		result.Detail = fmt.Sprintf("%s (%s)", path, humanize.Bytes(uint64(info.Size())))
	}
	return result
}

// CheckCharset verifies that a charset name resolves to a decoder.
func CheckCharset(name, charset string) Result {
	if _, err := listfile.LookupEncoding(charset); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: charset}
}
