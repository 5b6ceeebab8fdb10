package spawn

import (
	"github.com/lixenwraith/skyfarer/component"
	"github.com/lixenwraith/skyfarer/core"
)

// ModelLoader resolves an asset path into child geometries
type ModelLoader interface {
	LoadModel(path string) ([]component.Attachment, error)
}

// Model builds an unregistered shape entity from an asset
// A failed load yields a placeholder with empty geometry and a warning; it never aborts
func (f *Factory) Model(path string, loader ModelLoader) *component.Entity {
	e := &component.Entity{
		Name:     path,
		Geometry: component.Geometry{Kind: component.GeometryEmpty},
		Body:     component.NewBody(component.BodyDynamic, core.CategoryShape),
	}
	if loader == nil {
		f.log.Warn().Str("path", path).Msg("no model loader, using placeholder")
		return e
	}

	parts, err := loader.LoadModel(path)
	if err != nil {
		f.log.Warn().Err(err).Str("path", path).Msg("model load failed, using placeholder")
		return e
	}
	e.Attachments = parts
	return e
}
