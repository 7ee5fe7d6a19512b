// Package junit builds and serializes JUnit XML reports from doxygen
// diagnostics, in the shape CI dashboards ingest.
package junit

import "encoding/xml"

// SuiteName is the name attribute of every emitted suite. It matches the
// file key that tool-level doxygen messages are grouped under.
const SuiteName = "doxygen"

// TestSuite is the root element of a report. Failures and Time stay 0 in
// every emitted document: diagnostics are reported through the errors
// counter, and no timing is performed.
type TestSuite struct {
	XMLName  xml.Name   `xml:"testsuite"`
	Failures int        `xml:"failures,attr"`
	Name     string     `xml:"name,attr"`
	Time     int        `xml:"time,attr"`
	Errors   int        `xml:"errors,attr"`
	Tests    int        `xml:"tests,attr"`
	Cases    []TestCase `xml:"testcase"`
}

// TestCase is one reported diagnostic. Real cases carry File and Line,
// including line "0" for tool-level messages; the placeholder case
// emitted for a clean run carries only Name.
type TestCase struct {
	Name  string     `xml:"name,attr"`
	File  string     `xml:"file,attr,omitempty"`
	Line  string     `xml:"line,attr,omitempty"`
	Error *CaseError `xml:"error,omitempty"`
}

// CaseError carries the formatted diagnostic text.
type CaseError struct {
	Message string `xml:"message,attr"`
}
