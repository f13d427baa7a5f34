// Package controllers_test 提供 controllers 层的黑盒测试。
package controllers_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/bionicotaku/lingo-services-greeting/internal/controllers"
	"github.com/bionicotaku/lingo-services-greeting/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectedBody 是服务对所有请求返回的固定响应体。
const expectedBody = "Hello from DevSecOps pipeline!"

func newTestHandler() *controllers.GreetingHandler {
	logger := log.NewStdLogger(io.Discard)
	uc := services.NewGreetingUsecase(logger)
	return controllers.NewGreetingHandler(uc, logger)
}

// TestGreetingHandler_MethodAndPathInvariance 验证响应与请求方法、
// 路径和请求头完全无关。
func TestGreetingHandler_MethodAndPathInvariance(t *testing.T) {
	h := newTestHandler()

	methods := []string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodDelete, http.MethodPatch, http.MethodHead, http.MethodOptions,
	}
	paths := []string{"/", "/anything", "/deeply/nested/path", "/metrics-lookalike?x=1"}

	for _, method := range methods {
		for _, path := range paths {
			t.Run(method+" "+path, func(t *testing.T) {
				req := httptest.NewRequest(method, path, nil)
				req.Header.Set("X-Arbitrary", "ignored")
				rec := httptest.NewRecorder()

				h.ServeHTTP(rec, req)

				require.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, expectedBody, rec.Body.String())
				assert.Equal(t, "text/plain; charset=UTF-8", rec.Header().Get("Content-Type"))
				assert.Equal(t, strconv.Itoa(len(expectedBody)), rec.Header().Get("Content-Length"))
			})
		}
	}
}

// TestGreetingHandler_Idempotent 验证同一进程内重复请求得到逐字节相同的响应。
func TestGreetingHandler_Idempotent(t *testing.T) {
	h := newTestHandler()

	var bodies [][]byte
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		bodies = append(bodies, rec.Body.Bytes())
	}
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
}

// failingWriter 模拟客户端断开：所有写入都失败。
type failingWriter struct {
	header http.Header
	status int
}

func (f *failingWriter) Header() http.Header {
	if f.header == nil {
		f.header = http.Header{}
	}
	return f.header
}

func (f *failingWriter) WriteHeader(status int) { f.status = status }

func (f *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

// TestGreetingHandler_WriteFailureIsNonFatal 验证写入失败不会 panic，
// 处理器可以继续服务后续请求。
func TestGreetingHandler_WriteFailureIsNonFatal(t *testing.T) {
	h := newTestHandler()

	w := &failingWriter{}
	require.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusOK, w.status)

	// 后续请求不受影响。
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, expectedBody, rec.Body.String())
}
