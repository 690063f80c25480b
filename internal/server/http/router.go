package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewMux 挂上 /api/*、/healthz 和静态页面
func NewMux(h *Handler, webDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSONStatus(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
			return
		}
		writeJSON(w, map[string]string{"status": "ok"})
	})
	RegisterStaticRoutes(mux, webDir)
	return mux
}

// Server 包一层 http.Server，带超时和优雅关闭
type Server struct {
	srv *http.Server
}

func NewServer(h http.Handler) *Server {
	return &Server{
		srv: &http.Server{
			Handler:           LogRequests(h),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			// 要留够电脑思考 + 展示延迟
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Listen 阻塞直到 Close；正常关闭返回 nil
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve 在已绑定的 ln 上服务，端口占用这类错误要在调用前处理掉
func (s *Server) Serve(ln net.Listener) error {
	s.srv.Addr = ln.Addr().String()
	log.Info().Str("addr", s.srv.Addr).Msg("listening")
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Close(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LogRequests 每个请求一行日志；出错的请求用 warn
func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		lvl := zerolog.DebugLevel
		if rec.status >= http.StatusBadRequest {
			lvl = zerolog.WarnLevel
		}
		log.WithLevel(lvl).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("http request")
	})
}
