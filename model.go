package pollinations

import "github.com/samber/lo"

// Model selects the image generation backend.
type Model string

const (
	ModelFlux        Model = "flux"
	ModelFluxRealism Model = "flux-realism"
	ModelAnyDark     Model = "any-dark"
	ModelFluxAnime   Model = "flux-anime"
	ModelFlux3D      Model = "flux-3d"
	ModelTurbo       Model = "turbo"
)

// Models lists every selectable image model.
var Models = []Model{ModelFlux, ModelFluxRealism, ModelAnyDark, ModelFluxAnime, ModelFlux3D, ModelTurbo}

func (m Model) Valid() bool {
	return lo.Contains(Models, m)
}

// DisplayName returns the human readable label for a model.
func (m Model) DisplayName() string {
	switch m {
	case ModelFlux:
		return "Flux"
	case ModelFluxRealism:
		return "Flux Realism"
	case ModelAnyDark:
		return "Any Dark"
	case ModelFluxAnime:
		return "Flux Anime"
	case ModelFlux3D:
		return "Flux 3D"
	case ModelTurbo:
		return "Turbo"
	}
	return string(m)
}
