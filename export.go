package textbookrsa

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ExportVersion is the current export format version.
const ExportVersion = 1

// ExportedKeypair is the JSON form of a keypair.
// WARNING: it contains the private exponent - handle securely.
type ExportedKeypair struct {
	// Version is the export format version. MUST be 1.
	Version int `json:"version"`
	// E is the public exponent.
	E uint64 `json:"e"`
	// N is the modulus.
	N uint64 `json:"n"`
	// D is the private exponent.
	D uint64 `json:"d"`
	// P and Q are the generating primes. Optional, but both or neither.
	P uint64 `json:"p,omitempty"`
	Q uint64 `json:"q,omitempty"`
	// ExportedAt is the export timestamp. Informational only.
	ExportedAt time.Time `json:"exportedAt"`
}

// Validate checks that the exported data describes a usable keypair.
func (e *ExportedKeypair) Validate() error {
	if e.Version != ExportVersion {
		return fmt.Errorf("%w: unsupported version %d, expected %d", ErrInvalidImportData, e.Version, ExportVersion)
	}
	if e.E == 0 || e.N == 0 || e.D == 0 {
		return fmt.Errorf("%w: e, n and d are required", ErrInvalidImportData)
	}
	if (e.P == 0) != (e.Q == 0) {
		return fmt.Errorf("%w: p and q must be given together", ErrInvalidImportData)
	}

	kp := &Keypair{E: e.E, N: e.N, D: e.D, P: e.P, Q: e.Q}
	if err := kp.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImportData, err)
	}
	return nil
}

// Export returns exportable keypair data.
func (k *Keypair) Export() *ExportedKeypair {
	return &ExportedKeypair{
		Version:    ExportVersion,
		E:          k.E,
		N:          k.N,
		D:          k.D,
		P:          k.P,
		Q:          k.Q,
		ExportedAt: time.Now().UTC(),
	}
}

// ImportKeypair reconstructs a keypair from exported data.
func ImportKeypair(data *ExportedKeypair) (*Keypair, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: no data", ErrInvalidImportData)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &Keypair{E: data.E, N: data.N, D: data.D, P: data.P, Q: data.Q}, nil
}

// WriteKeypairFile writes the exported keypair as indented JSON. The file
// is created with mode 0600 and replaced atomically.
func WriteKeypairFile(path string, k *Keypair) error {
	data, err := json.MarshalIndent(k.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode keypair: %w", err)
	}
	return writeFileAtomic(path, append(data, '\n'), 0o600)
}

// ReadKeypairFile reads and imports a keypair written by WriteKeypairFile.
func ReadKeypairFile(path string) (*Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	var exported ExportedKeypair
	if err := json.Unmarshal(data, &exported); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImportData, err)
	}
	return ImportKeypair(&exported)
}
