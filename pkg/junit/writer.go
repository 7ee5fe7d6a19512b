package junit

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteTo writes the report as indented XML with a document declaration.
func (s *TestSuite) WriteTo(w io.Writer) (int64, error) {
	data, err := s.encode()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// WriteFile writes the report to path. The document is staged in a
// temporary file next to path and renamed into place, so a failed write
// never leaves a truncated report behind.
func (s *TestSuite) WriteFile(path string) error {
	data, err := s.encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write report file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}

func (s *TestSuite) encode() ([]byte, error) {
	body, err := xml.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	data := append([]byte(xml.Header), body...)
	return append(data, '\n'), nil
}
