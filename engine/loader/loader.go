// Package loader turns scene files and their material libraries into a scene.Scene.
package loader

import (
	"context"
	"io"

	"github.com/Carmen-Shannon/oxy-forward/engine/asset"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu/headless"
	"github.com/Carmen-Shannon/oxy-forward/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-forward/engine/scene"
	"github.com/Carmen-Shannon/oxy-forward/log"
)

// loader is the implementation of the Loader interface.
type loader struct {
	backend loaderBackend
	device  gpu.Device
	logger  log.Logger

	texturesRoot string
	modelsRoot   string
}

// Loader loads a scene file, its material libraries and their textures. Loading
// completes before rendering starts; a Loader is not safe for concurrent use.
type Loader interface {
	// Load fetches and parses the scene at location, which may be a file path or an
	// http(s) URL.
	//
	// Parameters:
	//   - ctx: context bounding remote fetches
	//   - location: the scene location
	//
	// Returns:
	//   - scene.Scene: the scene, with every object under the root or its "p" parent
	//   - error: *ResourceLoadFailure or *ParseError
	Load(ctx context.Context, location string) (scene.Scene, error)

	// LoadReader parses a scene from r. Material libraries resolve under the models root,
	// or against the working directory when no root is set.
	//
	// Parameters:
	//   - ctx: context bounding remote fetches of libraries and textures
	//   - name: the name used in errors and logs
	//   - r: the scene source
	//
	// Returns:
	//   - scene.Scene: the scene
	//   - error: *ResourceLoadFailure or *ParseError
	LoadReader(ctx context.Context, name string, r io.Reader) (scene.Scene, error)
}

var _ Loader = &loader{}

// NewLoader creates a new Loader for the wavefront scene format with the options
// applied. Without WithDevice, textures are created on a headless device.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: the new loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		backend: newWavefrontLoaderBackend(),
		logger:  log.For(log.Loader),
	}
	for _, option := range options {
		option(l)
	}
	if l.device == nil {
		l.device = headless.NewDevice()
	}
	return l
}

func (l *loader) Load(ctx context.Context, location string) (scene.Scene, error) {
	res, err := asset.Open(ctx, location, nil)
	if err != nil {
		return nil, &ResourceLoadFailure{Resource: location, Err: err}
	}
	defer res.Close()

	return l.load(ctx, res.Path(), res, res)
}

func (l *loader) LoadReader(ctx context.Context, name string, r io.Reader) (scene.Scene, error) {
	return l.load(ctx, name, r, nil)
}

func (l *loader) load(ctx context.Context, name string, r io.Reader, relTo *asset.Resource) (scene.Scene, error) {
	parsed, err := l.backend.ParseScene(r, name)
	if err != nil {
		return nil, err
	}

	materials, err := l.loadLibraries(ctx, parsed.Libraries, relTo)
	if err != nil {
		return nil, err
	}

	s := scene.NewScene(scene.WithMaterials(materials...))
	l.buildNodes(s.Root(), parsed)
	l.checkMaterialRefs(s, parsed)

	meshes := 0
	for _, obj := range parsed.Objects {
		if obj.Mesh != nil {
			meshes++
		}
	}
	l.logger.Infof("loaded %s: %d objects (%d meshes), %d materials", name, len(parsed.Objects), meshes, len(materials))
	return s, nil
}

// loadLibraries parses every referenced library and builds its materials. Later
// definitions of a name replace earlier ones, across libraries too.
func (l *loader) loadLibraries(ctx context.Context, libs []string, relTo *asset.Resource) ([]material.Material, error) {
	var (
		order  []string
		byName = make(map[string]*ParsedMaterial)
	)
	for _, lib := range libs {
		parsed, err := l.parseLibrary(ctx, lib, relTo)
		if err != nil {
			return nil, err
		}
		for _, pm := range parsed {
			if _, dup := byName[pm.Name]; dup {
				l.logger.Warningf("%s:%d: material %q redefined, using the later definition", lib, pm.Line, pm.Name)
			} else {
				order = append(order, pm.Name)
			}
			byName[pm.Name] = pm
		}
	}

	textures := make(map[string]gpu.Texture)
	materials := make([]material.Material, 0, len(order))
	for _, name := range order {
		m, err := l.buildMaterial(ctx, byName[name], textures)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, nil
}

func (l *loader) parseLibrary(ctx context.Context, lib string, relTo *asset.Resource) ([]*ParsedMaterial, error) {
	location := lib
	if l.modelsRoot != "" {
		location = asset.Join(l.modelsRoot, lib)
		relTo = nil
	}

	res, err := asset.Open(ctx, location, relTo)
	if err != nil {
		return nil, &ResourceLoadFailure{Resource: location, Err: err}
	}
	defer res.Close()

	return l.backend.ParseMaterials(res, res.Path())
}

func (l *loader) buildMaterial(ctx context.Context, pm *ParsedMaterial, textures map[string]gpu.Texture) (material.Material, error) {
	options := []material.MaterialBuilderOption{material.WithName(pm.Name)}
	if pm.Albedo != nil {
		options = append(options, material.WithAlbedo(*pm.Albedo))
	}
	if pm.Roughness != nil {
		options = append(options, material.WithRoughness(*pm.Roughness))
	}
	if pm.Metalness != nil {
		options = append(options, material.WithMetalness(*pm.Metalness))
	}

	maps := []struct {
		path string
		with func(gpu.Texture) material.MaterialBuilderOption
	}{
		{pm.AlbedoMap, material.WithAlbedoMap},
		{pm.NormalMap, material.WithNormalMap},
		{pm.RoughnessMap, material.WithRoughnessMap},
		{pm.MetalnessMap, material.WithMetalnessMap},
	}
	for _, m := range maps {
		if m.path == "" {
			continue
		}
		tex, err := l.texture(ctx, m.path, textures)
		if err != nil {
			return nil, err
		}
		options = append(options, m.with(tex))
	}
	return material.NewMaterial(options...), nil
}

// texture creates each texture location once, however many materials reference it.
func (l *loader) texture(ctx context.Context, name string, textures map[string]gpu.Texture) (gpu.Texture, error) {
	location := asset.Join(l.texturesRoot, name)
	if tex, ok := textures[location]; ok {
		return tex, nil
	}
	if err := asset.Exists(ctx, location); err != nil {
		return nil, &ResourceLoadFailure{Resource: location, Err: err}
	}
	tex, err := l.device.CreateTexture(ctx, location)
	if err != nil {
		return nil, &ResourceLoadFailure{Resource: location, Err: err}
	}
	textures[location] = tex
	return tex, nil
}

// buildNodes attaches every object to root in file order, then moves objects that named a
// parent under the first node of that name.
func (l *loader) buildNodes(root *scene.Node, parsed *ParsedScene) {
	nodes := make([]*scene.Node, len(parsed.Objects))
	for i, obj := range parsed.Objects {
		var options []scene.NodeBuilderOption
		if obj.Local != nil {
			options = append(options, scene.WithLocal(*obj.Local))
		}
		if obj.Mesh != nil {
			nodes[i] = scene.NewMeshNode(obj.Name, obj.Mesh, options...)
		} else {
			nodes[i] = scene.NewNode(obj.Name, options...)
		}
		root.AddChild(nodes[i])
	}

	for i, obj := range parsed.Objects {
		if obj.Parent == "" {
			continue
		}
		child := nodes[i]
		parent := root.FindByName(obj.Parent)
		switch {
		case parent == nil:
			l.logger.Warningf("object %q: parent %q not found, keeping it under the root", obj.Name, obj.Parent)
		case child.Contains(parent):
			l.logger.Warningf("object %q: parent %q is itself or a descendant, keeping it under the root", obj.Name, obj.Parent)
		default:
			root.RemoveChild(child)
			parent.AddChild(child)
		}
	}
}

func (l *loader) checkMaterialRefs(s scene.Scene, parsed *ParsedScene) {
	known := s.Materials()
	warned := make(map[string]bool)
	for _, obj := range parsed.Objects {
		if obj.Mesh == nil {
			continue
		}
		for _, g := range obj.Mesh.Groups {
			if g.Material == nil || warned[*g.Material] {
				continue
			}
			if _, ok := known[*g.Material]; !ok {
				warned[*g.Material] = true
				l.logger.Warningf("object %q: unknown material %q, drawing with the default", obj.Name, *g.Material)
			}
		}
	}
}
