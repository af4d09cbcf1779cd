package ioc

import (
	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	// Web 候选人以及接受邀请的用户访问
	Web   *egin.Component
	Admin AdminServer
}
