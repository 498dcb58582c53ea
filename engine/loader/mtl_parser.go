package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ParsedMaterial is one "newmtl" block of a material library. Unset scalars are nil and
// unset maps are empty; defaults are applied when the material is built.
type ParsedMaterial struct {
	Name string
	Line int

	Albedo    *mgl32.Vec3
	Roughness *float32
	Metalness *float32

	AlbedoMap    string
	NormalMap    string
	RoughnessMap string
	MetalnessMap string
}

// parseMTL reads a material library. Materials are returned in declaration order,
// duplicates included.
//
// Parameters:
//   - r: the library source
//   - file: the name used in errors
//
// Returns:
//   - []*ParsedMaterial: the materials
//   - error: a *ParseError for the first malformed record
func parseMTL(r io.Reader, file string) ([]*ParsedMaterial, error) {
	var (
		materials []*ParsedMaterial
		cur       *ParsedMaterial
		line      int
	)
	fail := func(field string, err error) error {
		return &ParseError{File: file, Line: line, Field: field, Err: err}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		tokens := strings.Fields(stripComment(scanner.Text()))
		if len(tokens) == 0 {
			continue
		}

		key := tokens[0]
		if key == "newmtl" {
			name := strings.Join(tokens[1:], " ")
			if name == "" {
				return nil, fail(key, errors.New("missing material name"))
			}
			cur = &ParsedMaterial{Name: name, Line: line}
			materials = append(materials, cur)
			continue
		}

		if !knownMaterialKey(key) {
			continue
		}
		if cur == nil {
			return nil, fail(key, errors.New("property before any newmtl"))
		}

		switch key {
		case "Kd":
			v, err := parseVec3(tokens)
			if err != nil {
				return nil, fail(key, err)
			}
			cur.Albedo = &v
		case "Ns":
			f, err := parseFloat32(tokens)
			if err != nil {
				return nil, fail(key, err)
			}
			cur.Roughness = &f
		case "Pm":
			f, err := parseFloat32(tokens)
			if err != nil {
				return nil, fail(key, err)
			}
			cur.Metalness = &f
		default:
			if len(tokens) < 2 {
				return nil, fail(key, fmt.Errorf("missing texture path"))
			}
			// options such as "-bm 1.0" precede the path
			path := tokens[len(tokens)-1]
			switch key {
			case "map_Kd":
				cur.AlbedoMap = path
			case "map_Bump", "map_bump", "bump":
				cur.NormalMap = path
			case "map_Ns":
				cur.RoughnessMap = path
			case "map_Pm", "refl":
				cur.MetalnessMap = path
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fail("read", err)
	}
	return materials, nil
}

func knownMaterialKey(key string) bool {
	switch key {
	case "Kd", "Ns", "Pm", "map_Kd", "map_Bump", "map_bump", "bump", "map_Ns", "map_Pm", "refl":
		return true
	}
	return false
}
