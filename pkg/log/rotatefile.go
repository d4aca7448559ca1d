// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// swapped out in tests
var _now = time.Now

const _defaultBackupStamp = "20060102"

// RotateFile is an io.WriteCloser that writes to a file and starts a fresh one
// whenever the backup stamp of the current time changes, by default once a
// day. The old file is renamed to <name>-<stamp>.<unix><ext> next to it.
type RotateFile struct {
	// Filename is the file to write logs to, backups are kept in the same
	// directory. Empty means <processname>.log under os.TempDir().
	Filename string `json:"filename" yaml:"filename"`

	// MaxBackups caps how many rotated files are kept, zero keeps all.
	MaxBackups int `json:"maxbackups" yaml:"maxbackups"`

	// BackupTimeFormat is the reference layout of the backup stamp.
	BackupTimeFormat string `json:"backupTimeFormat" yaml:"backupTimeFormat"`

	// LocalTime stamps backups in local time instead of UTC.
	LocalTime bool `json:"localtime" yaml:"localtime"`

	mu    sync.Mutex
	file  *os.File
	stamp string
}

// Write appends to the current file, rotating first when the stamp rolled over
func (f *RotateFile) Write(d []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		if err := f.open(); err != nil {
			return 0, err
		}
	} else if f.stamp != f.timestamp() {
		if err := f.rotate(); err != nil {
			return 0, err
		}
	}
	return f.file.Write(d)
}

// Rotate moves the current file aside and starts a fresh one
func (f *RotateFile) Rotate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rotate()
}

// Close closes the current file
func (f *RotateFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func (f *RotateFile) path() string {
	if f.Filename != "" {
		return f.Filename
	}
	return filepath.Join(os.TempDir(), filepath.Base(os.Args[0])+".log")
}

func (f *RotateFile) timestamp() string {
	layout := f.BackupTimeFormat
	if layout == "" {
		layout = _defaultBackupStamp
	}
	t := _now()
	if !f.LocalTime {
		t = t.UTC()
	}
	return t.Format(layout)
}

func (f *RotateFile) open() error {
	if err := os.MkdirAll(filepath.Dir(f.path()), 0755); err != nil {
		return fmt.Errorf("can't create the log directory: %v", err)
	}
	file, err := os.OpenFile(f.path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	f.file, f.stamp = file, f.timestamp()
	return nil
}

func (f *RotateFile) rotate() error {
	if f.file != nil {
		if err := f.file.Close(); err != nil {
			return err
		}
		f.file = nil
		if err := os.Rename(f.path(), f.backupPath()); err != nil {
			return fmt.Errorf("can't move the log file aside: %v", err)
		}
	}
	if err := f.open(); err != nil {
		return err
	}
	f.prune()
	return nil
}

func (f *RotateFile) backupPath() string {
	dir, name := filepath.Split(f.path())
	ext := filepath.Ext(name)
	return filepath.Join(dir, fmt.Sprintf("%s-%s.%d%s",
		strings.TrimSuffix(name, ext), f.stamp, _now().Unix(), ext))
}

// prune deletes the oldest backups beyond MaxBackups, by modification time
func (f *RotateFile) prune() {
	if f.MaxBackups <= 0 {
		return
	}
	dir, name := filepath.Split(f.path())
	ext := filepath.Ext(name)
	prefix := strings.TrimSuffix(name, ext) + "-"
	entries, err := os.ReadDir(filepath.Dir(f.path()))
	if err != nil {
		return
	}
	type backup struct {
		name    string
		modTime time.Time
	}
	var backups []backup
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, backup{e.Name(), info.ModTime()})
	}
	if len(backups) <= f.MaxBackups {
		return
	}
	sort.Slice(backups, func(i, j int) bool { return backups[i].modTime.Before(backups[j].modTime) })
	for _, b := range backups[:len(backups)-f.MaxBackups] {
		os.Remove(filepath.Join(dir, b.name))
	}
}
