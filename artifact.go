package textbookrsa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vaultsandbox/textbook-rsa/internal/crypto"
)

// SealSuffix is appended to an artifact path to name its seal file.
const SealSuffix = ".seal.json"

// Seal is a detached ML-DSA-65 signature over a ciphertext artifact.
type Seal = crypto.Seal

// FormatCiphertext renders blocks as decimal integers separated by single
// spaces, with no trailing whitespace.
func FormatCiphertext(blocks []uint64) []byte {
	var buf bytes.Buffer
	for i, b := range blocks {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(strconv.FormatUint(b, 10))
	}
	return buf.Bytes()
}

// WriteCiphertext writes the artifact form of blocks to w.
func WriteCiphertext(w io.Writer, blocks []uint64) error {
	_, err := w.Write(FormatCiphertext(blocks))
	return err
}

// WriteCiphertextFile writes the artifact form of blocks to path. The file
// is written to a temporary name and renamed into place, so a failure
// never leaves a partial artifact behind.
func WriteCiphertextFile(path string, blocks []uint64) error {
	return writeFileAtomic(path, FormatCiphertext(blocks), 0o644)
}

// SealArtifact signs an artifact with a one-time ML-DSA-65 key.
func SealArtifact(data []byte) (*Seal, error) {
	seal, err := crypto.SealArtifact(data)
	if err != nil {
		return nil, fmt.Errorf("seal artifact: %w", err)
	}
	return seal, nil
}

// VerifyArtifact checks seal against data. Failures match ErrSealInvalid.
func VerifyArtifact(data []byte, seal *Seal) error {
	return wrapError(crypto.VerifySeal(data, seal))
}

// WriteSealFile writes seal as JSON next to its artifact.
func WriteSealFile(path string, seal *Seal) error {
	data, err := json.MarshalIndent(seal, "", "  ")
	if err != nil {
		return fmt.Errorf("encode seal: %w", err)
	}
	return writeFileAtomic(path, append(data, '\n'), 0o644)
}

// ReadSealFile reads a seal written by WriteSealFile.
func ReadSealFile(path string) (*Seal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	var seal Seal
	if err := json.Unmarshal(data, &seal); err != nil {
		return nil, &SealError{Err: fmt.Errorf("parse %s: %w", path, err)}
	}
	return &seal, nil
}

// VerifyArtifactFile verifies the artifact at path against its seal file.
func VerifyArtifactFile(artifactPath, sealPath string) error {
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return &IOError{Op: "read", Path: artifactPath, Err: err}
	}
	seal, err := ReadSealFile(sealPath)
	if err != nil {
		return err
	}
	return VerifyArtifact(data, seal)
}

// writeFileAtomic writes data to a temporary file in the target directory
// and renames it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Chmod(perm); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
