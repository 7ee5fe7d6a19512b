package junit

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// ReadFile parses a report file from disk.
func ReadFile(path string) (*TestSuite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a report from an io.Reader.
func Read(r io.Reader) (*TestSuite, error) {
	var suite TestSuite
	if err := xml.NewDecoder(r).Decode(&suite); err != nil {
		return nil, fmt.Errorf("decode junit xml: %w", err)
	}

	// Basic validation
	if suite.Name == "" {
		return nil, fmt.Errorf("missing testsuite name")
	}

	return &suite, nil
}

// ReadBytes parses a report from a byte slice.
func ReadBytes(data []byte) (*TestSuite, error) {
	return Read(bytes.NewReader(data))
}
