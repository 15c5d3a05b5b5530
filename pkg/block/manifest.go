package block

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/blockscope/blockscope/pkg/errors"
)

// Manifest is the on-disk TOML description of a block list.
//
//	[[block]]
//	id = "engine"
//	name = "Engine Core"
//	category = "core"
//	enabled = true
//	requires = ["physics"]
type Manifest struct {
	Blocks []Block `toml:"block"`
}

// LoadManifest reads and validates a block manifest from path.
func LoadManifest(path string) ([]Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s not found", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	blocks, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return blocks, nil
}

// ParseManifest decodes and validates TOML manifest bytes.
// An empty manifest is valid and yields an empty block list.
func ParseManifest(data []byte) ([]Block, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "invalid manifest")
	}
	if err := ValidateBlocks(m.Blocks); err != nil {
		return nil, err
	}
	return m.Blocks, nil
}

// ValidateBlocks checks structural invariants on a block list:
// non-empty unique IDs and known categories. Dangling dependency
// references are legal here - the resolver reports them as missing
// dependencies rather than rejecting the input.
func ValidateBlocks(blocks []Block) error {
	seen := make(map[string]bool, len(blocks))
	for i, b := range blocks {
		if b.ID == "" {
			return errors.New(errors.ErrCodeInvalidManifest, "block %d has no id", i)
		}
		if seen[b.ID] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate block id %q", b.ID)
		}
		seen[b.ID] = true
		if _, err := ParseCategory(string(b.Category)); err != nil {
			return errors.New(errors.ErrCodeInvalidCategory, "block %q: %v", b.ID, err)
		}
	}
	return nil
}

// FindBlock returns the block with the given ID.
func FindBlock(blocks []Block, id string) (Block, bool) {
	for _, b := range blocks {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}
