package block

import (
	"testing"

	"github.com/blockscope/blockscope/pkg/errors"
)

const sampleManifest = `
[[block]]
id = "engine"
name = "Engine Core"
category = "core"
enabled = true
requires = ["physics"]

[[block]]
id = "physics"
name = "Physics"
category = "core"
enabled = true

[[block]]
id = "hud"
name = "HUD Overlay"
category = "presentation"
enabled = false
requires = ["engine"]
modifies = ["physics"]
`

func TestParseManifest(t *testing.T) {
	blocks, err := ParseManifest([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("ParseManifest() returned %d blocks, want 3", len(blocks))
	}

	hud, ok := FindBlock(blocks, "hud")
	if !ok {
		t.Fatal("FindBlock(\"hud\") not found")
	}
	if hud.Category != CategoryPresentation {
		t.Errorf("hud.Category = %q, want %q", hud.Category, CategoryPresentation)
	}
	if hud.Enabled {
		t.Error("hud.Enabled = true, want false")
	}
	if len(hud.Requires) != 1 || hud.Requires[0] != "engine" {
		t.Errorf("hud.Requires = %v, want [engine]", hud.Requires)
	}
	if len(hud.Modifies) != 1 || hud.Modifies[0] != "physics" {
		t.Errorf("hud.Modifies = %v, want [physics]", hud.Modifies)
	}
}

func TestParseManifest_Empty(t *testing.T) {
	blocks, err := ParseManifest(nil)
	if err != nil {
		t.Fatalf("ParseManifest(nil) error = %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("ParseManifest(nil) returned %d blocks, want 0", len(blocks))
	}
}

func TestParseManifest_InvalidTOML(t *testing.T) {
	_, err := ParseManifest([]byte("[[block]\nid ="))
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("ParseManifest(bad toml) error = %v, want INVALID_MANIFEST", err)
	}
}

func TestParseManifest_DuplicateID(t *testing.T) {
	data := `
[[block]]
id = "a"
category = "core"

[[block]]
id = "a"
category = "core"
`
	_, err := ParseManifest([]byte(data))
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("ParseManifest(duplicate ids) error = %v, want INVALID_MANIFEST", err)
	}
}

func TestParseManifest_UnknownCategory(t *testing.T) {
	data := `
[[block]]
id = "a"
category = "plugin"
`
	_, err := ParseManifest([]byte(data))
	if !errors.Is(err, errors.ErrCodeInvalidCategory) {
		t.Errorf("ParseManifest(bad category) error = %v, want INVALID_CATEGORY", err)
	}
}

func TestParseManifest_MissingID(t *testing.T) {
	data := `
[[block]]
category = "core"
`
	_, err := ParseManifest([]byte(data))
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("ParseManifest(missing id) error = %v, want INVALID_MANIFEST", err)
	}
}

func TestParseManifest_DanglingReferenceAllowed(t *testing.T) {
	data := `
[[block]]
id = "a"
category = "core"
requires = ["nonexistent"]
`
	if _, err := ParseManifest([]byte(data)); err != nil {
		t.Errorf("ParseManifest(dangling reference) error = %v, want nil", err)
	}
}

func TestLoadManifest_NotFound(t *testing.T) {
	_, err := LoadManifest("does/not/exist.toml")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadManifest(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
