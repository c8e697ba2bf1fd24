package feedsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.Header.Get("User-Agent") != userAgent {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("\ufeffTitulo,Fecha\nMisa,03-03-2025\n"))
	}))
	defer srv.Close()

	body, err := NewClientWithHTTP(srv.Client()).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "Titulo,Fecha\nMisa,03-03-2025\n", body)
}

func TestFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sheet not published", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClientWithHTTP(srv.Client()).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=404")
	require.Contains(t, err.Error(), "sheet not published")
}

func TestFetchHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewClientWithHTTP(srv.Client()).Fetch(ctx, srv.URL)
	require.Error(t, err)
}

func TestFetchEmptyURL(t *testing.T) {
	_, err := NewClient(time.Second).Fetch(context.Background(), " ")
	require.Error(t, err)
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Titulo,Fecha\nMisa,03-03-2025\nRosario,04-03-2025\n"))
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.Client())
	client.maxBytes = 16
	_, err := client.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "exceeds 16 bytes")

	client.maxBytes = 1 << 10
	body, err := client.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Contains(t, body, "Rosario")
}
