package viewer

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var testInfo = Approximant{
	Name:        "Pade-[3/4]",
	Numerator:   []float64{0, 1, 0, 1.0 / 42},
	Denominator: []float64{1, 0.5, 3.0 / 28, 1.0 / 84, 1.0 / 1680},
	NumText:     "0.02381 x^3 + 1 x",
	DenText:     "0.0005952 x^4 + 0.0119 x^3 + 0.1071 x^2 + 0.5 x + 1",
}

func TestHandlers(t *testing.T) {
	png := []byte("\x89PNG fake")
	v := New(png, testInfo, zerolog.Nop())
	h := v.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plot.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.Equal(t, png, rec.Body.Bytes())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/approximant", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got Approximant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, testInfo, got)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `<img src="/plot.png"`)
	require.Contains(t, rec.Body.String(), testInfo.DenText)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "healthy")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/close", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCloseIsIdempotent(t *testing.T) {
	v := New(nil, testInfo, zerolog.Nop())
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		v.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/close", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	select {
	case <-v.Closed():
	default:
		t.Fatal("viewer not closed")
	}
}

func TestServeBlocksUntilClosed(t *testing.T) {
	v := New([]byte("png"), testInfo, zerolog.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- v.ServeListener(context.Background(), ln) }()

	base := "http://" + ln.Addr().String()
	resp, err := http.Get(base + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case err := <-done:
		t.Fatalf("Serve returned before close: %v", err)
	default:
	}

	resp, err = http.Post(base+"/close", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after close")
	}
}

func TestServeStopsOnContextCancel(t *testing.T) {
	v := New(nil, testInfo, zerolog.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- v.ServeListener(ctx, ln) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
