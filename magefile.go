//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
)

const (
	modulePath = "github.com/dkoosis/doxyjunit"
	binPath    = "./bin/doxyjunit"
)

// Default target - build the binary
var Default = Build

// Build builds the doxyjunit binary with version metadata stamped in.
func Build() error {
	version := getGitVersion()
	commit := getGitCommit()
	date := time.Now().UTC().Format(time.RFC3339)

	ldflags := fmt.Sprintf("-s -w -X '%s/internal/version.Version=%s' -X '%s/internal/version.CommitHash=%s' -X '%s/internal/version.BuildDate=%s'",
		modulePath, version, modulePath, commit, modulePath, date)

	return runCmd("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/doxyjunit")
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("./bin")
}

// Install builds and installs doxyjunit into GOPATH/bin
func Install() error {
	mg.Deps(Build)
	return runCmd("go", "install", "./cmd/doxyjunit")
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return runCmd("go", "test", "./...")
}

// Race runs tests with the race detector
func (Test) Race() error {
	return runCmd("go", "test", "-race", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	return runCmd("go", "test", "-cover", "./...")
}

// Lint namespace for linting commands
type Lint mg.Namespace

// Vet runs go vet
func (Lint) Vet() error {
	return runCmd("go", "vet", "./...")
}

// Format checks code formatting
func (Lint) Format() error {
	out, err := exec.Command("gofmt", "-l", ".").Output()
	if err != nil {
		return err
	}
	if files := strings.TrimSpace(string(out)); files != "" {
		return fmt.Errorf("gofmt needed:\n%s", files)
	}
	return nil
}

func runCmd(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func getGitVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty", "--match=v*").Output()
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(string(out))
}

func getGitCommit() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}
