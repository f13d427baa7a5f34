package services

import (
	"context"

	"github.com/bionicotaku/lingo-services-greeting/internal/models/vo"

	"github.com/go-kratos/kratos/v2/log"
)

// greetingMessage 是服务对所有请求返回的固定问候语。
// 问候内容不可配置，进程生命周期内保持不变。
const greetingMessage = "Hello from DevSecOps pipeline!"

// GreetingUsecase 封装问候语业务逻辑：持有一个不可变的问候值，
// 对每次请求返回同一结果。
type GreetingUsecase struct {
	greeting *vo.Greeting
	log      *log.Helper
}

// NewGreetingUsecase 构造 Greeting 用例，问候值在构造时固定。
func NewGreetingUsecase(logger log.Logger) *GreetingUsecase {
	return &GreetingUsecase{
		greeting: &vo.Greeting{Message: greetingMessage},
		log:      log.NewHelper(logger),
	}
}

// Message 返回固定问候语。无输入、无副作用，重复调用结果恒等。
func (uc *GreetingUsecase) Message(ctx context.Context) *vo.Greeting {
	uc.log.WithContext(ctx).Debugf("serve greeting")
	return uc.greeting
}
