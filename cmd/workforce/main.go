package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/skillhive/workforce/internal/clock"
	"github.com/skillhive/workforce/internal/config"
	"github.com/skillhive/workforce/internal/migration"
	"github.com/skillhive/workforce/internal/observability"
	"github.com/skillhive/workforce/internal/server"
	"github.com/skillhive/workforce/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
