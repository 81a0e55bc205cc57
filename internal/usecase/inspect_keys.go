package usecase

import (
	"github.com/aalvaropc/cfgjs/internal/domain"
	"github.com/aalvaropc/cfgjs/internal/ports"
)

type InspectKeys struct {
	defs ports.DefinitionsLoader
}

func NewInspectKeys(dl ports.DefinitionsLoader) *InspectKeys {
	return &InspectKeys{defs: dl}
}

// Execute reports which recognized keys carry a value. Values are not returned.
func (uc *InspectKeys) Execute(definitionsPath string) ([]domain.KeyStatus, error) {
	defs, err := uc.defs.LoadDefinitions(definitionsPath)
	if err != nil {
		return nil, err
	}
	return domain.Inspect(defs), nil
}
