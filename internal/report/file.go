package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/kamusis/vecpair/internal/pairs"
	"github.com/kamusis/vecpair/internal/vector"
)

// LockTimeout bounds how long WriteFile waits for another writer of the same path.
var LockTimeout = 10 * time.Second

// WriteFile renders the report into path.
//
// The report is written to a temp file in the same directory and renamed
// into place while holding an advisory lock on path + ".lock".
func WriteFile(path string, vs []vector.Vector, ps []pairs.PairDistance, opts Options) error {
	var buf bytes.Buffer
	if err := Write(&buf, vs, ps, opts); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create output dir %s: %w", dir, err)
	}

	unlock, err := acquireLock(path+".lock", LockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("cannot write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("cannot install report %s: %w", path, err)
	}
	return nil
}

func acquireLock(lockPath string, timeout time.Duration) (func(), error) {
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire output lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("another run is writing the same output (lock: %s)", lockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
