// Package ledgerfile reads ledger documents from the file system. A ledger
// path is either a single document or a directory whose *.toml members are
// concatenated textually before parsing.
package ledgerfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ImportFileName is the directory-ledger member that receives imported
// transactions.
const ImportFileName = "imported.toml"

// Read returns the document text for a ledger path.
func Read(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading ledger %s: %w", path, err)
	}
	if !info.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading ledger %s: %w", path, err)
		}
		return string(data), nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", fmt.Errorf("reading ledger directory %s: %w", path, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".toml") {
			names = append(names, e.Name())
		}
	}
	// Sorted for a deterministic concatenation order.
	sort.Strings(names)

	var doc strings.Builder
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(path, name))
		if err != nil {
			return "", fmt.Errorf("reading ledger member %s: %w", name, err)
		}
		doc.Write(data)
		doc.WriteString("\n")
	}
	return doc.String(), nil
}

// AppendTarget returns the file that import should append to: the path
// itself for a file ledger, or the well-known import member inside a
// directory ledger.
func AppendTarget(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		// A not-yet-created ledger file is a valid import target.
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", fmt.Errorf("resolving ledger %s: %w", path, err)
	}
	if info.IsDir() {
		return filepath.Join(path, ImportFileName), nil
	}
	return path, nil
}
