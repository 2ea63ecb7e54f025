package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name passed to New
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
	Width       int    `json:"width"`  // Default image width
	Height      int    `json:"height"` // Default image height
}

type builder func(cameraOverrides ...renderer.CameraConfig) *Scene

type entry struct {
	description string
	build       builder
}

var registry = map[string]entry{
	"default": {
		description: "Diffuse sphere resting on a huge ground sphere",
		build:       NewDefaultScene,
	},
	"materials": {
		description: "Hollow glass, diffuse and fuzzed metal spheres side by side",
		build:       NewMaterialsScene,
	},
	"spheregrid": {
		description: "Field of random small spheres around three large ones, with depth of field",
		build:       NewSphereGridScene,
	},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene. Camera overrides are merged over the
// scene's own camera defaults.
func New(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return e.build(cameraOverrides...), nil
}

// ListScenes returns metadata for every registered scene, sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, name := range Names() {
		e := registry[name]
		config := e.build().CameraConfig
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: e.description,
			Width:       config.Width,
			Height:      config.Height,
		})
	}
	return scenes
}

// titleCase converts a name to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
