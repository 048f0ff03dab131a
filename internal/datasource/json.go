package datasource

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rogerio-castellano/medicine-inventory/internal/repo"
)

//go:embed seed.json
var seed []byte

// Decode reads a snapshot document of the form
// {"medicines": [...], "batches": [...], "transactions": [...]}.
func Decode(r io.Reader) (repo.Snapshot, error) {
	var s repo.Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return repo.Snapshot{}, fmt.Errorf("failed to read JSON: %w", err)
	}
	return s, nil
}

// LoadFile reads a snapshot document from disk.
func LoadFile(path string) (repo.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return repo.Snapshot{}, fmt.Errorf("unable to open data file %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// LoadEmbedded returns the sample data set compiled into the binary.
func LoadEmbedded() (repo.Snapshot, error) {
	return Decode(bytes.NewReader(seed))
}
