package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/zip"
)

// archiveMember is a file added to the provisioning client archive.
type archiveMember struct {
	Name string
	Body []byte
	Mode os.FileMode
}

// patchArchive returns a copy of the zip archive src with members appended.
// Existing entries are copied without recompression and keep their order. An
// existing entry whose name is also in members is replaced.
func patchArchive(src []byte, members []archiveMember, modified time.Time) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	replaced := make(map[string]bool, len(members))
	for _, m := range members {
		replaced[m.Name] = true
	}

	var buf bytes.Buffer
	buf.Grow(len(src))
	w := zip.NewWriter(&buf)

	for _, f := range r.File {
		if replaced[f.Name] {
			continue
		}
		if err := w.Copy(f); err != nil {
			return nil, fmt.Errorf("copy %s: %w", f.Name, err)
		}
	}

	for _, m := range members {
		fh := &zip.FileHeader{
			Name:     m.Name,
			Method:   zip.Deflate,
			Modified: modified,
		}
		fh.SetMode(m.Mode)
		fw, err := w.CreateHeader(fh)
		if err != nil {
			return nil, fmt.Errorf("add %s: %w", m.Name, err)
		}
		if _, err := fw.Write(m.Body); err != nil {
			return nil, fmt.Errorf("write %s: %w", m.Name, err)
		}
	}

	if r.Comment != "" {
		if err := w.SetComment(r.Comment); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}
