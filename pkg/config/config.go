// Package config loads a declarative YAML render description: image
// and sampling parameters, camera placement, and a named material
// table, so a render can be driven from a file instead of Go literals
// like the hand-written scene.New*Scene() constructors.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/df07/pathtracer/pkg/camera"
	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/geometry"
	"github.com/df07/pathtracer/pkg/loaders"
	"github.com/df07/pathtracer/pkg/material"
)

// RenderConfig holds the render configuration input:
// {width, height, samples_per_pixel, max_depth, worker_count}.
type RenderConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	SamplesPerPixel int `yaml:"samples_per_pixel"`
	MaxDepth        int `yaml:"max_depth"`
	WorkerCount     int `yaml:"worker_count"`
}

// CameraConfig mirrors the camera's six scalars and three vectors.
type CameraConfig struct {
	LookFrom  [3]float64 `yaml:"look_from"`
	LookAt    [3]float64 `yaml:"look_at"`
	Vup       [3]float64 `yaml:"vup"`
	VFov      float64    `yaml:"vfov"`
	Aspect    float64    `yaml:"aspect"`
	FocusDist float64    `yaml:"focus_dist"`
}

// Build constructs a camera.Camera from the configuration.
func (c CameraConfig) Build() (*camera.Camera, error) {
	lookFrom := core.NewVec3(c.LookFrom[0], c.LookFrom[1], c.LookFrom[2])
	lookAt := core.NewVec3(c.LookAt[0], c.LookAt[1], c.LookAt[2])
	vup := core.NewVec3(c.Vup[0], c.Vup[1], c.Vup[2])
	return camera.New(lookFrom, lookAt, vup, c.VFov, c.Aspect, c.FocusDist)
}

// MaterialConfig describes one entry of the named material table.
// Only the fields relevant to Type need be set; the rest are ignored.
type MaterialConfig struct {
	Type      string     `yaml:"type"` // "diffuse", "metal", "dielectric", "cook_torrance"
	Albedo    [3]float64 `yaml:"albedo"`
	Emission  [3]float64 `yaml:"emission"`
	Fuzz      float64    `yaml:"fuzz"`
	IOR       float64    `yaml:"ior"`
	Specular  [3]float64 `yaml:"specular"`
	Roughness float64    `yaml:"roughness"`
	KD        float64    `yaml:"kd"`
}

func vec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// Build constructs the concrete core.Material this entry describes.
func (m MaterialConfig) Build() (core.Material, error) {
	switch m.Type {
	case "diffuse":
		mat := material.NewDiffuse(vec3(m.Albedo))
		mat.Emission = vec3(m.Emission)
		return mat, nil
	case "metal":
		return material.NewMetal(vec3(m.Albedo), m.Fuzz), nil
	case "dielectric":
		return material.NewDielectric(m.IOR), nil
	case "cook_torrance":
		return material.NewCookTorrance(vec3(m.Albedo), m.KD, vec3(m.Specular), m.Roughness), nil
	default:
		return nil, fmt.Errorf("config: unknown material type %q", m.Type)
	}
}

// SceneConfig names the external mesh file that supplies this
// config's primitive stream, resolved relative to the YAML file's own
// directory.
type SceneConfig struct {
	MeshFile        string `yaml:"mesh_file"`
	MeshFormat      string `yaml:"mesh_format"` // "stl" or "obj"
	DefaultMaterial string `yaml:"default_material"`
}

// Config is the full YAML render description.
type Config struct {
	Render    RenderConfig              `yaml:"render"`
	Camera    CameraConfig              `yaml:"camera"`
	Materials map[string]MaterialConfig `yaml:"materials"`
	Scene     SceneConfig               `yaml:"scene"`

	dir string // directory Load read this config from, for resolving Scene.MeshFile
}

// Load reads and parses a render configuration from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.dir = filepath.Dir(path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the render configuration for values that would
// silently produce a degenerate render. Camera-specific validation
// (vfov, aspect, focus distance) happens in camera.New itself when
// Camera.Build is called.
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render width and height must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.SamplesPerPixel <= 0 {
		return fmt.Errorf("render samples_per_pixel must be positive, got %d", c.Render.SamplesPerPixel)
	}
	if c.Render.MaxDepth <= 0 {
		return fmt.Errorf("render max_depth must be positive, got %d", c.Render.MaxDepth)
	}
	return nil
}

// Materialize builds the named material table into concrete
// core.Material values, failing on the first unconstructable entry.
func (c *Config) Materialize() (map[string]core.Material, error) {
	out := make(map[string]core.Material, len(c.Materials))
	for name, mc := range c.Materials {
		mat, err := mc.Build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		out[name] = mat
	}
	return out, nil
}

// BuildWorld loads the mesh file named by Scene.MeshFile (resolved
// relative to the config file's directory) and builds it into a BVH.
// The default material comes from Scene.DefaultMaterial, looked up in
// the already-materialized table.
func (c *Config) BuildWorld(materials map[string]core.Material) (core.Hittable, error) {
	if c.Scene.MeshFile == "" {
		return nil, fmt.Errorf("config: scene.mesh_file is required to build a world")
	}

	defaultMat, ok := materials[c.Scene.DefaultMaterial]
	if !ok {
		return nil, fmt.Errorf("config: scene.default_material %q not found in materials table", c.Scene.DefaultMaterial)
	}

	meshPath := c.Scene.MeshFile
	if !filepath.IsAbs(meshPath) {
		meshPath = filepath.Join(c.dir, meshPath)
	}

	var shapes []core.Shape
	var err error
	switch c.Scene.MeshFormat {
	case "stl":
		shapes, err = loaders.LoadSTL(meshPath, defaultMat)
	case "obj":
		shapes, err = loaders.LoadOBJ(meshPath, defaultMat)
	default:
		return nil, fmt.Errorf("config: unknown scene.mesh_format %q (want stl or obj)", c.Scene.MeshFormat)
	}
	if err != nil {
		return nil, err
	}

	return geometry.Build(shapes), nil
}

// ApplyOverrides merges positive CLI flag overrides into the render
// config, letting individual flags win over the loaded file; zero or
// negative values leave the loaded value in place.
func (c *Config) ApplyOverrides(width, height, samplesPerPixel, workerCount int) {
	if width > 0 {
		c.Render.Width = width
	}
	if height > 0 {
		c.Render.Height = height
	}
	if samplesPerPixel > 0 {
		c.Render.SamplesPerPixel = samplesPerPixel
	}
	if workerCount > 0 {
		c.Render.WorkerCount = workerCount
	}
}
