package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name for built-ins, file path for scene files
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the JSON file (file type only)
}

// ListBuiltinScenes returns the compiled-in scenes sorted by name
func ListBuiltinScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			Name:        titleCase(name),
			Description: builtins[name].description,
			Type:        "builtin",
		})
	}
	return scenes
}

// ListSceneFiles scans dir for *.json scene files. A missing directory yields
// an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		scenes = append(scenes, ParseSceneMetadata(filePath))
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ParseSceneMetadata reads the name and description of a scene file, falling
// back to a name derived from the file name when they are missing or unreadable
func ParseSceneMetadata(filePath string) SceneInfo {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       filePath,
		Name:     titleCase(nameWithoutExt),
		Type:     "file",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return info
	}
	if header.Name != "" {
		info.Name = header.Name
	}
	info.Description = header.Description
	return info
}

// ListAllScenes returns the built-in scenes followed by the scene files in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	return append(ListBuiltinScenes(), files...), nil
}

// Load resolves a scene reference: paths ending in .json are loaded from
// disk, anything else names a built-in scene
func Load(ref string, seed int64) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(ref), ".json") {
		return LoadFile(ref)
	}
	return Create(ref, seed)
}

// titleCase converts a filename-style string to title case
// e.g., "three-spheres" -> "Three Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
