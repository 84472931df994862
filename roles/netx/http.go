package netx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var (
	// ErrBadStatus indicates Get received a non-2xx response.
	ErrBadStatus = errors.New("unexpected response status")

	// ErrBodyTooLarge indicates the response body exceeded the configured
	// max_body_bytes cap.
	ErrBodyTooLarge = errors.New("response body exceeds configured cap")
)

// Get fetches the URL and returns the response body as an owned byte slice.
// Non-2xx statuses fail with ErrBadStatus; bodies over the configured cap
// fail with ErrBodyTooLarge rather than being truncated.
func (r *NetRole) Get(ctx context.Context, url string) ([]byte, error) {
	client := &http.Client{Timeout: r.timeout()}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", r.config.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrBadStatus, url, resp.StatusCode)
	}

	reader := io.Reader(resp.Body)
	if r.config.MaxBodyBytes > 0 {
		reader = io.LimitReader(resp.Body, r.config.MaxBodyBytes+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}
	if r.config.MaxBodyBytes > 0 && int64(len(body)) > r.config.MaxBodyBytes {
		return nil, fmt.Errorf("%w: %s, cap is %d", ErrBodyTooLarge, url, r.config.MaxBodyBytes)
	}
	return body, nil
}

// Connect opens a TCP connection to addr, bounded by the configured timeout
// and the context, whichever ends first.
func (r *NetRole) Connect(ctx context.Context, addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: r.timeout()}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", addr, err)
	}
	return conn, nil
}

// StaticServer is a running static file server started by ServeDir.
type StaticServer struct {
	srv  *http.Server
	addr string
}

// Addr returns the address the server is listening on, useful when ServeDir
// was given ":0".
func (s *StaticServer) Addr() string {
	return s.addr
}

// Close gracefully shuts the server down.
func (s *StaticServer) Close(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown static server: %w", err)
	}
	return nil
}

// ServeDir serves the directory over HTTP on addr and returns immediately
// with a handle to the running server. Routing goes through a chi router so
// callers can reuse the pattern with their own middleware later.
func (r *NetRole) ServeDir(addr, dir string) (*StaticServer, error) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Handle("/*", http.FileServer(http.Dir(dir)))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: r.timeout(),
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.logger.Error("static server stopped", "addr", ln.Addr().String(), "error", err)
		}
	}()

	r.logger.Info("static server started", "addr", ln.Addr().String(), "dir", dir)
	return &StaticServer{srv: srv, addr: ln.Addr().String()}, nil
}

func (r *NetRole) timeout() time.Duration {
	return time.Duration(r.config.TimeoutSeconds) * time.Second
}
