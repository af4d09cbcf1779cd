package ioc

import (
	"net/http"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/ai"
	"github.com/ecodeclub/recruit/internal/feedback"
	"github.com/ecodeclub/recruit/internal/manager"
	"github.com/ecodeclub/recruit/internal/pipeline"
	"github.com/ecodeclub/recruit/internal/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(pipelineHdl *pipeline.AdminHandler,
	managerHdl *manager.AdminHandler,
	feedbackHdl *feedback.AdminHandler,
	aiHdl *ai.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(middleware.NewMetricsBuilder("admin").Build())
	res.Use(cors.New(corsConfig("admin.allowOrigins")))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	// 只有绑定了公司的管理员才能进入管理端
	res.Use(middleware.NewCheckManagerMiddlewareBuilder().Build())
	pipelineHdl.PrivateRoutes(res.Engine)
	managerHdl.PrivateRoutes(res.Engine)
	feedbackHdl.PrivateRoutes(res.Engine)
	aiHdl.PrivateRoutes(res.Engine)
	return res
}
