package ports

import "github.com/aalvaropc/cfgjs/internal/domain"

type ProjectInitializer interface {
	Init(spec domain.ProjectSpec, force bool) error
}
