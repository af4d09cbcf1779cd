package ioc

import (
	"github.com/ecodeclub/recruit/internal/email"
	"github.com/ecodeclub/recruit/internal/email/aliyun"
	"github.com/gotomicro/ego/core/econf"
)

func InitEmailService() email.Service {
	var cfg aliyun.Config
	err := econf.UnmarshalKey("email.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	svc, err := aliyun.NewDirectMail(cfg)
	if err != nil {
		panic(err)
	}
	return svc
}
