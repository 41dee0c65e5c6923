// Package viewer shows a rendered plot in the browser and blocks until the
// viewer is dismissed.
package viewer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Approximant is the JSON view of the fitted rational function.
type Approximant struct {
	Name        string    `json:"name"`
	Numerator   []float64 `json:"numerator"`
	Denominator []float64 `json:"denominator"`
	NumText     string    `json:"numeratorText"`
	DenText     string    `json:"denominatorText"`
}

// Viewer serves one PNG plot until it is closed.
type Viewer struct {
	png    []byte
	info   Approximant
	log    zerolog.Logger
	router *mux.Router

	closeOnce sync.Once
	closed    chan struct{}
}

func New(png []byte, info Approximant, log zerolog.Logger) *Viewer {
	v := &Viewer{
		png:    png,
		info:   info,
		log:    log,
		closed: make(chan struct{}),
	}

	r := mux.NewRouter()
	r.HandleFunc("/", v.pageHandler).Methods("GET")
	r.HandleFunc("/plot.png", v.plotHandler).Methods("GET")
	r.HandleFunc("/approximant", v.approximantHandler).Methods("GET")
	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.HandleFunc("/close", v.closeHandler).Methods("POST", "OPTIONS")
	r.Use(enableCORS)
	v.router = r

	return v
}

// Handler exposes the router, mainly for tests.
func (v *Viewer) Handler() http.Handler {
	return v.router
}

// Closed is closed once a client dismisses the viewer.
func (v *Viewer) Closed() <-chan struct{} {
	return v.closed
}

// Serve listens on addr and blocks until the viewer is closed or ctx is done.
func (v *Viewer) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return v.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener.
func (v *Viewer) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           v.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v.log.Info().Str("url", "http://"+ln.Addr().String()+"/").Msg("plot viewer listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-v.closed:
			v.log.Info().Msg("plot viewer closed by client")
		case <-gctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

const page = `<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body>
<img src="/plot.png" alt="%s">
<pre>%s
%s</pre>
<form method="post" action="/close"><button type="submit">Close</button></form>
</body>
</html>
`

func (v *Viewer) pageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, page, v.info.Name, v.info.Name, v.info.NumText, v.info.DenText)
}

func (v *Viewer) plotHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(v.png)
}

func (v *Viewer) approximantHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v.info); err != nil {
		v.log.Error().Err(err).Msg("encode approximant")
	}
}

func (v *Viewer) closeHandler(w http.ResponseWriter, r *http.Request) {
	v.closeOnce.Do(func() { close(v.closed) })
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("closed\n"))
}
