package typegen

import (
	"bytes"
	"os"
	"sort"

	"github.com/fudini/bender/errors"
)

// CheckResult holds the result of a generated-output staleness check
type CheckResult struct {
	UpToDate    bool
	Differences []string // destination paths whose on-disk content is stale
}

// Compare checks freshly rendered output against the files on disk.
// rendered maps each destination path to the content a generation run would
// write there. Output is fully deterministic, so a plain byte comparison is
// enough; a missing destination counts as a difference.
func Compare(rendered map[string]string) (*CheckResult, error) {
	differences := make([]string, 0)

	for path, fresh := range rendered {
		stale, err := fileIsStale(path, []byte(fresh))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compare %s", path)
		}
		if stale {
			differences = append(differences, path)
		}
	}

	// Deterministic order regardless of map iteration
	sort.Strings(differences)

	return &CheckResult{
		UpToDate:    len(differences) == 0,
		Differences: differences,
	}, nil
}

// fileIsStale reports whether the file at path differs from fresh.
func fileIsStale(path string, fresh []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return !bytes.Equal(existing, fresh), nil
}
