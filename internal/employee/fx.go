package employee

import (
	"github.com/skillhive/workforce/internal/employee/repository"
	"github.com/skillhive/workforce/internal/employee/service"
	"go.uber.org/fx"
)

var Module = fx.Module("employee.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
