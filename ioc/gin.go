package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/feedback"
	"github.com/ecodeclub/recruit/internal/manager"
	"github.com/ecodeclub/recruit/internal/pipeline"
	"github.com/ecodeclub/recruit/internal/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	pipelineHdl *pipeline.Handler,
	managerHdl *manager.Handler,
	feedbackHdl *feedback.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder("web").Build())
	res.Use(cors.New(corsConfig("web.allowOrigins")))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	pipelineHdl.PublicRoutes(res.Engine)
	managerHdl.PublicRoutes(res.Engine)
	feedbackHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	pipelineHdl.PrivateRoutes(res.Engine)
	managerHdl.PrivateRoutes(res.Engine)
	feedbackHdl.PrivateRoutes(res.Engine)
	return res
}

// corsConfig 本地开发放开 localhost，其余只允许配置里的域名
func corsConfig(key string) cors.Config {
	domains := econf.GetStringSlice(key)
	return cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, d := range domains {
				if strings.HasSuffix(origin, d) {
					return true
				}
			}
			return false
		},
	}
}
