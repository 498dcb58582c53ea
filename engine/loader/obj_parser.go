package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-forward/common"
	"github.com/Carmen-Shannon/oxy-forward/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultObjectName names the object that collects records appearing before the first "o".
const DefaultObjectName = "default"

// ParsedObject is one object block of a scene file.
type ParsedObject struct {
	Name string

	// Line is where the object was declared, 0 for the implicit default object.
	Line int

	// Parent is the name given by a "p" record, empty when the object sits under the root.
	Parent string

	// Local is the transform given by an "mm" record, nil for identity.
	Local *mgl32.Mat4

	// Mesh is nil when the object declared no faces.
	Mesh *model.Mesh
}

// ParsedScene is the result of parsing a scene file.
type ParsedScene struct {
	Objects []*ParsedObject

	// Libraries lists the "mtllib" file names in declaration order.
	Libraries []string
}

// objectState is the per-object vertex pool. Pool element 0 has the global 1-based index
// held in the matching *Start field.
type objectState struct {
	obj *ParsedObject

	positions []mgl32.Vec3
	uvs       []mgl32.Vec2
	normals   []mgl32.Vec3

	positionStart int
	uvStart       int
	normalStart   int

	combos map[string]uint32
}

type objParser struct {
	file  string
	line  int
	scene *ParsedScene
	cur   *objectState

	// material is the usemtl cursor. It carries across object boundaries.
	material *string

	// running global record counts
	positions int
	uvs       int
	normals   int
}

type corner struct {
	key       string
	position  int
	uv        int
	normal    int
	hasUV     bool
	hasNormal bool
}

// parseOBJ reads a scene file into per-object meshes. Faces are grouped by the current
// material, vertex combinations are deduplicated by their reference token and polygons
// are fan triangulated.
//
// Parameters:
//   - r: the scene source
//   - file: the name used in errors
//
// Returns:
//   - *ParsedScene: the parsed objects, empty for empty input
//   - error: a *ParseError for the first malformed record
func parseOBJ(r io.Reader, file string) (*ParsedScene, error) {
	p := &objParser{file: file, scene: &ParsedScene{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		p.line++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, p.errorf("read", err)
	}
	p.flush()
	return p.scene, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

func (p *objParser) errorf(field string, err error) error {
	return &ParseError{File: p.file, Line: p.line, Field: field, Err: err}
}

func (p *objParser) parseLine(raw string) error {
	tokens := strings.Fields(stripComment(raw))
	if len(tokens) == 0 {
		return nil
	}

	switch tokens[0] {
	case "o":
		name := strings.Join(tokens[1:], " ")
		if name == "" {
			return p.errorf("o", errors.New("missing object name"))
		}
		p.flush()
		p.begin(name, p.line)
	case "v":
		v, err := parseVec3(tokens)
		if err != nil {
			return p.errorf("v", err)
		}
		o := p.object()
		o.positions = append(o.positions, v)
		p.positions++
	case "vt":
		v, err := parseVec2(tokens)
		if err != nil {
			return p.errorf("vt", err)
		}
		v[1] = 1 - v[1]
		o := p.object()
		o.uvs = append(o.uvs, v)
		p.uvs++
	case "vn":
		v, err := parseVec3(tokens)
		if err != nil {
			return p.errorf("vn", err)
		}
		o := p.object()
		o.normals = append(o.normals, v)
		p.normals++
	case "f":
		return p.parseFace(tokens[1:])
	case "mtllib":
		if len(tokens) < 2 {
			return p.errorf("mtllib", errors.New("missing library file name"))
		}
		p.scene.Libraries = append(p.scene.Libraries, tokens[1:]...)
	case "usemtl":
		name := strings.Join(tokens[1:], " ")
		if name == "" {
			return p.errorf("usemtl", errors.New("missing material name"))
		}
		p.material = &name
	case "p":
		name := strings.Join(tokens[1:], " ")
		if name == "" {
			return p.errorf("p", errors.New("missing parent name"))
		}
		p.object().obj.Parent = name
	case "mm":
		values := make([]float32, 0, 16)
		for i, tok := range tokens[1:] {
			f, err := strconv.ParseFloat(tok, 32)
			if err != nil {
				return p.errorf(fmt.Sprintf("mm[%d]", i), err)
			}
			values = append(values, float32(f))
		}
		m, err := common.MatFromSlice(values)
		if err != nil {
			return p.errorf("mm", err)
		}
		p.object().obj.Local = &m
	}
	return nil
}

// object returns the current object, opening the implicit default object if none is open.
func (p *objParser) object() *objectState {
	if p.cur == nil {
		p.begin(DefaultObjectName, 0)
	}
	return p.cur
}

func (p *objParser) begin(name string, line int) {
	p.cur = &objectState{
		obj: &ParsedObject{
			Name: name,
			Line: line,
			Mesh: model.NewMesh(model.WithName(name)),
		},
		positionStart: p.positions + 1,
		uvStart:       p.uvs + 1,
		normalStart:   p.normals + 1,
		combos:        make(map[string]uint32),
	}
}

func (p *objParser) flush() {
	if p.cur == nil {
		return
	}
	if len(p.cur.obj.Mesh.Groups) == 0 {
		p.cur.obj.Mesh = nil
	}
	p.scene.Objects = append(p.scene.Objects, p.cur.obj)
	p.cur = nil
}

func (p *objParser) parseFace(refs []string) error {
	if len(refs) < 3 {
		return p.errorf("f", fmt.Errorf("face needs at least 3 vertices, got %d", len(refs)))
	}
	o := p.object()

	corners := make([]corner, len(refs))
	missingNormal := false
	for i, ref := range refs {
		c, err := p.resolveCorner(o, ref)
		if err != nil {
			return p.errorf(fmt.Sprintf("f[%d]", i), err)
		}
		corners[i] = c
		missingNormal = missingNormal || !c.hasNormal
	}

	var faceNormal mgl32.Vec3
	if missingNormal {
		faceNormal = geometricNormal(o.positions[corners[0].position], o.positions[corners[1].position], o.positions[corners[2].position])
	}

	indices := make([]uint32, len(corners))
	for i, c := range corners {
		idx, ok := o.combos[c.key]
		if !ok {
			idx = o.expand(c, faceNormal)
			o.combos[c.key] = idx
		}
		indices[i] = idx
	}

	g := o.obj.Mesh.Group(p.material)
	for i := 1; i+1 < len(indices); i++ {
		g.Indices = append(g.Indices, indices[0], indices[i], indices[i+1])
	}
	return nil
}

// resolveCorner maps one "p", "p/u", "p//n" or "p/u/n" token onto the object's local pools.
func (p *objParser) resolveCorner(o *objectState, ref string) (corner, error) {
	parts := strings.Split(ref, "/")
	if len(parts) > 3 || parts[0] == "" {
		return corner{}, fmt.Errorf("malformed vertex reference %q", ref)
	}

	c := corner{key: ref}
	var err error
	var global [3]int
	if c.position, global[0], err = resolveIndex(parts[0], o.positionStart, len(o.positions), p.positions); err != nil {
		return corner{}, fmt.Errorf("position: %w", err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.uv, global[1], err = resolveIndex(parts[1], o.uvStart, len(o.uvs), p.uvs); err != nil {
			return corner{}, fmt.Errorf("texcoord: %w", err)
		}
		c.hasUV = true
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.normal, global[2], err = resolveIndex(parts[2], o.normalStart, len(o.normals), p.normals); err != nil {
			return corner{}, fmt.Errorf("normal: %w", err)
		}
		c.hasNormal = true
	}

	// Relative references name different vertices as the pools grow, so they are keyed
	// by the absolute indices they resolve to.
	if strings.Contains(ref, "-") {
		for i, part := range parts {
			if part != "" {
				parts[i] = strconv.Itoa(global[i])
			}
		}
		c.key = strings.Join(parts, "/")
	}
	return c, nil
}

// resolveIndex turns a 1-based global (or negative relative) index into a pool offset.
//
// Returns the pool offset and the absolute global index.
func resolveIndex(token string, poolStart, poolLen, globalCount int) (int, int, error) {
	idx, err := strconv.Atoi(token)
	if err != nil {
		return 0, 0, err
	}
	if idx == 0 {
		return 0, 0, errors.New("index 0 is not valid")
	}
	global := idx
	if idx < 0 {
		global = globalCount + idx + 1
	}
	local := global - poolStart
	if local < 0 || local >= poolLen {
		return 0, 0, fmt.Errorf("index %d out of range for this object's %d entries", idx, poolLen)
	}
	return local, global, nil
}

// expand appends a new vertex combination to the mesh streams and returns its index.
// A missing texcoord becomes (0, 0); a missing normal becomes faceNormal.
func (o *objectState) expand(c corner, faceNormal mgl32.Vec3) uint32 {
	m := o.obj.Mesh
	idx := uint32(m.VertexCount())

	pos := o.positions[c.position]
	m.Positions = append(m.Positions, pos[0], pos[1], pos[2])

	var uv mgl32.Vec2
	if c.hasUV {
		uv = o.uvs[c.uv]
	}
	m.UVs = append(m.UVs, uv[0], uv[1])

	n := faceNormal
	if c.hasNormal {
		n = o.normals[c.normal]
	}
	m.Normals = append(m.Normals, n[0], n[1], n[2])
	return idx
}

func geometricNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() < 1e-12 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}

func parseVec3(tokens []string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	if len(tokens) < 4 {
		return v, fmt.Errorf(`expected 3 arguments for "%s"; got %d`, tokens[0], len(tokens)-1)
	}
	for i := range 3 {
		f, err := strconv.ParseFloat(tokens[i+1], 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseVec2(tokens []string) (mgl32.Vec2, error) {
	var v mgl32.Vec2
	if len(tokens) < 3 {
		return v, fmt.Errorf(`expected 2 arguments for "%s"; got %d`, tokens[0], len(tokens)-1)
	}
	for i := range 2 {
		f, err := strconv.ParseFloat(tokens[i+1], 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseFloat32(tokens []string) (float32, error) {
	if len(tokens) < 2 {
		return 0, fmt.Errorf(`expected 1 argument for "%s"; got %d`, tokens[0], len(tokens)-1)
	}
	f, err := strconv.ParseFloat(tokens[1], 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}
