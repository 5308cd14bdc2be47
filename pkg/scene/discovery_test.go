package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"three-spheres", "Three Spheres"},
		{"glass_ball", "Glass Ball"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		wantName    string
		wantDescrip string
	}{
		{
			name:        "complete.json",
			content:     `{"name": "Glass Study", "description": "Refraction test", "materials": {}, "spheres": []}`,
			wantName:    "Glass Study",
			wantDescrip: "Refraction test",
		},
		{
			name:        "no-metadata.json",
			content:     `{"materials": {}, "spheres": []}`,
			wantName:    "No Metadata",
			wantDescrip: "",
		},
		{
			name:        "broken_file.json",
			content:     `{"name": `,
			wantName:    "Broken File",
			wantDescrip: "",
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("Failed to write temp file: %v", err)
			}

			info := ParseSceneMetadata(path)
			if info.Name != tc.wantName {
				t.Errorf("Name = %q, want %q", info.Name, tc.wantName)
			}
			if info.Description != tc.wantDescrip {
				t.Errorf("Description = %q, want %q", info.Description, tc.wantDescrip)
			}
			if info.Type != "file" || info.FilePath != path || info.ID != path {
				t.Errorf("Unexpected file fields: %+v", info)
			}
		})
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty non-nil list, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b-scene.json", "a-scene.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(`{}`), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	builtinCount := len(Names())
	if len(scenes) != builtinCount+2 {
		t.Fatalf("Expected %d scenes, got %d", builtinCount+2, len(scenes))
	}
	for _, s := range scenes[:builtinCount] {
		if s.Type != "builtin" || s.Description == "" {
			t.Errorf("Expected described built-in scene, got %+v", s)
		}
	}
	if scenes[builtinCount].Name != "A Scene" || scenes[builtinCount+1].Name != "B Scene" {
		t.Errorf("Expected files sorted by name, got %q then %q", scenes[builtinCount].Name, scenes[builtinCount+1].Name)
	}
}

func TestLoad(t *testing.T) {
	if _, err := Load("normals", 1); err != nil {
		t.Errorf("Load(builtin) error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "tiny.JSON")
	if err := os.WriteFile(path, []byte(`{"materials": {}, "spheres": []}`), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}
	if _, err := Load(path, 1); err != nil {
		t.Errorf("Load(file) error: %v", err)
	}

	if _, err := Load("missing", 1); err == nil {
		t.Error("Expected error for unknown scene")
	}
}
