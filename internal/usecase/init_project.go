package usecase

import (
	"github.com/aalvaropc/cfgjs/internal/domain"
	"github.com/aalvaropc/cfgjs/internal/ports"
)

type InitProject struct {
	initializer ports.ProjectInitializer
}

func NewInitProject(initializer ports.ProjectInitializer) *InitProject {
	return &InitProject{initializer: initializer}
}

func (uc *InitProject) Execute(root string, cfg domain.Config, force bool) error {
	return uc.initializer.Init(domain.ProjectSpec{Root: root, Config: cfg}, force)
}
