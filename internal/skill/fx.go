package skill

import (
	"github.com/skillhive/workforce/internal/skill/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("skill.catalog",
	fx.Provide(repository.Provide),
)
