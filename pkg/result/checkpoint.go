package result

import (
	"encoding/gob"
	"os"
)

// Checkpoint holds the outcome of a finished batch run: its records and
// how many tasks (non-blank, non-comment input lines) were completed.
type Checkpoint struct {
	Records        []Record
	CompletedLines int
}

// SaveCheckpoint writes batch state to a file.
func SaveCheckpoint(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint loads batch state from a file.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}
