package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/material"
)

// mtlMaterial accumulates the directives for one `newmtl` block before
// it is turned into a concrete core.Material.
type mtlMaterial struct {
	diffuse  core.Vec3
	emissive core.Vec3
	ior      float64
}

// LoadMTL parses an MTL file's Kd (diffuse), Ke (emissive), and Ni
// (index of refraction) directives into a named core.Material table.
// Ni > 1.0 on an entry builds a Dielectric instead of a Diffuse,
// since MTL has no explicit BRDF-kind field.
func LoadMTL(path string) (map[string]core.Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: opening MTL %s: %w", path, err)
	}
	defer f.Close()

	raw := map[string]*mtlMaterial{}
	var current string

	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "newmtl":
			if len(fields) < 2 {
				return nil, fmt.Errorf("loaders: %s:%d: newmtl missing a name", path, lineNum)
			}
			current = fields[1]
			raw[current] = &mtlMaterial{ior: 1.0}
		case "Kd":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: %s:%d: Kd: %w", path, lineNum, err)
			}
			if current != "" {
				raw[current].diffuse = v
			}
		case "Ke":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: %s:%d: Ke: %w", path, lineNum, err)
			}
			if current != "" {
				raw[current].emissive = v
			}
		case "Ni":
			ior, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("loaders: %s:%d: Ni: %w", path, lineNum, err)
			}
			if current != "" {
				raw[current].ior = ior
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: reading MTL %s: %w", path, err)
	}

	out := make(map[string]core.Material, len(raw))
	for name, m := range raw {
		if m.ior > 1.0 {
			out[name] = material.NewDielectric(m.ior)
			continue
		}
		diffuse := material.NewDiffuse(m.diffuse)
		diffuse.Emission = m.emissive
		out[name] = diffuse
	}

	return out, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}
