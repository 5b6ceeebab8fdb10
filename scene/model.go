package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/skyfarer/component"
	"github.com/lixenwraith/skyfarer/core"
)

// modelPart is one geometry entry of a model file
type modelPart struct {
	Kind    string     `yaml:"kind"`
	Radius  float64    `yaml:"radius"`
	Radius2 float64    `yaml:"radius2"`
	Width   float64    `yaml:"width"`
	Height  float64    `yaml:"height"`
	Length  float64    `yaml:"length"`
	Chamfer float64    `yaml:"chamfer"`
	Hue     float64    `yaml:"hue"`
	Offset  [3]float64 `yaml:"offset"`
}

type modelFile struct {
	Parts []modelPart `yaml:"parts"`
}

// FileLoader reads YAML model files relative to Root
//
//	parts:
//	  - kind: box
//	    width: 10
//	    offset: [0, 5, 0]
type FileLoader struct {
	Root string
}

// LoadModel implements spawn.ModelLoader
func (l FileLoader) LoadModel(path string) ([]component.Attachment, error) {
	data, err := os.ReadFile(filepath.Join(l.Root, path))
	if err != nil {
		return nil, fmt.Errorf("model read: %w", err)
	}

	var mf modelFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("model parse %s: %w", path, err)
	}
	if len(mf.Parts) == 0 {
		return nil, fmt.Errorf("model %s: no parts", path)
	}

	out := make([]component.Attachment, 0, len(mf.Parts))
	for i, p := range mf.Parts {
		kind, ok := component.ParseGeometryKind(p.Kind)
		if !ok || kind == component.GeometryEmpty || kind == component.GeometryFloor {
			return nil, fmt.Errorf("model %s part %d: invalid kind %q", path, i, p.Kind)
		}
		out = append(out, component.Attachment{
			Geometry: component.Geometry{
				Kind:    kind,
				Radius:  p.Radius,
				Radius2: p.Radius2,
				Width:   p.Width,
				Height:  p.Height,
				Length:  p.Length,
				Chamfer: p.Chamfer,
				Color:   core.RGBFromHue(p.Hue),
			},
			Offset: component.At(p.Offset[0], p.Offset[1], p.Offset[2]),
		})
	}
	return out, nil
}
