// Package views 提供视图对象（VO）与传输层表示之间的转换辅助函数。
// 负责将 Service 层返回的 VO 渲染为响应字节，保持 Controller 层的精简。
package views

import "github.com/bionicotaku/lingo-services-greeting/internal/models/vo"

// RenderPlainText 将 Greeting 视图对象渲染为 UTF-8 编码的响应体字节。
// 处理 nil 情况，返回空字节切片以避免 panic。
func RenderPlainText(greeting *vo.Greeting) []byte {
	if greeting == nil {
		return nil
	}
	return []byte(greeting.Message)
}
