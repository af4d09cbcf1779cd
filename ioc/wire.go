//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/recruit/internal/ai"
	"github.com/ecodeclub/recruit/internal/feedback"
	"github.com/ecodeclub/recruit/internal/manager"
	"github.com/ecodeclub/recruit/internal/pipeline"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		pipeline.InitModule,
		wire.FieldsOf(new(*pipeline.Module), "Hdl", "AdminHdl"),
		manager.InitModule,
		wire.FieldsOf(new(*manager.Module), "Hdl", "AdminHdl"),
		feedback.InitModule,
		wire.FieldsOf(new(*feedback.Module), "Hdl", "AdminHdl"),
		ai.InitModule,
		wire.FieldsOf(new(*ai.Module), "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
