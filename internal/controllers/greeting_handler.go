// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
package controllers

import (
	stdhttp "net/http"
	"strconv"

	"github.com/bionicotaku/lingo-services-greeting/internal/services"
	"github.com/bionicotaku/lingo-services-greeting/internal/views"

	"github.com/go-kratos/kratos/v2/log"
)

// contentTypePlainText 是唯一的响应内容类型。
const contentTypePlainText = "text/plain; charset=UTF-8"

// GreetingHandler 是挂载在根路径前缀上的 catch-all HTTP 处理器。
// 不检查方法、路径和请求头，对任意请求返回完全相同的响应。
type GreetingHandler struct {
	uc  *services.GreetingUsecase
	log *log.Helper
}

// NewGreetingHandler 构造由 GreetingUsecase 支撑的 HTTP Handler。
func NewGreetingHandler(uc *services.GreetingUsecase, logger log.Logger) *GreetingHandler {
	return &GreetingHandler{uc: uc, log: log.NewHelper(logger)}
}

// ServeHTTP 对每个请求写出 200 与固定问候语。
// Content-Length 为问候语 UTF-8 编码的精确字节数，响应体一次性写完。
// 写入失败（客户端断开等）只影响当前连接：记录日志后继续服务后续请求。
func (h *GreetingHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	body := views.RenderPlainText(h.uc.Message(r.Context()))
	w.Header().Set("Content-Type", contentTypePlainText)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(stdhttp.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.log.WithContext(r.Context()).Warnf("write greeting response: %v", err)
	}
}
