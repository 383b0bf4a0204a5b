package migration

import (
	"github.com/skillhive/workforce/internal/config"
	employeedomain "github.com/skillhive/workforce/internal/employee/domain"
	mentorshipdomain "github.com/skillhive/workforce/internal/mentorship/domain"
	"github.com/skillhive/workforce/internal/seed"
	skilldomain "github.com/skillhive/workforce/internal/skill/domain"
	"github.com/skillhive/workforce/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql skip the versioned migrations; the schema is
			// small enough for AutoMigrate to carry local setups.
			if err := conn.AutoMigrate(
				&employeedomain.Department{},
				&employeedomain.Employee{},
				&skilldomain.Skill{},
				&mentorshipdomain.MentorshipProfile{},
				&mentorshipdomain.MentorMatchRequest{},
				&mentorshipdomain.MentorshipMatch{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoData {
			// Replicas booting together can race the seed; the loser hits a
			// unique-key violation on rows the winner already wrote.
			if err := seed.EnsureDemoData(conn); err != nil && !db.IsDuplicateKeyErr(err) {
				return err
			}
		}
		return nil
	}),
)
