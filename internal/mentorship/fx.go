package mentorship

import (
	"github.com/skillhive/workforce/internal/mentorship/repository"
	"github.com/skillhive/workforce/internal/mentorship/service"
	"go.uber.org/fx"
)

var Module = fx.Module("mentorship.service",
	fx.Provide(
		repository.ProvideProfiles,
		repository.ProvideRequests,
		repository.ProvideMatches,
	),
	fx.Provide(service.New),
)
