package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePass_PlainJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/templates/42/pass", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"Name":"John"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"passTypeIdentifier":"p","serialNumber":"s"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	pass, err := client.CreatePass(context.Background(), 42,
		map[string]any{"Name": "John"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "p", pass.PassTypeIdentifier)
	assert.Equal(t, "s", pass.SerialNumber)
	assert.Empty(t, pass.URL)
}

func TestCreatePass_EmptyValuesSendEmptyObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(body))
		w.Write([]byte(`{"passTypeIdentifier":"p","serialNumber":"s"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.CreatePass(context.Background(), 1, nil, nil)
	require.NoError(t, err)
}

func TestCreatePass_Multipart(t *testing.T) {
	iconPath := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(iconPath, pngBytes, 0644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/templates/7/pass", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))

		_, ok := r.MultipartForm.File["icon"]
		assert.True(t, ok, "icon part missing")
		_, ok = r.MultipartForm.File["banner"]
		assert.False(t, ok, "invalid slot must be dropped")

		valuesFile, ok := r.MultipartForm.File["values"]
		require.True(t, ok, "values part missing")
		f, err := valuesFile[0].Open()
		require.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.JSONEq(t, `{"Name":"John"}`, string(data))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"passTypeIdentifier":"p","serialNumber":"s","url":"https://pw.io/p/s"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	pass, err := client.CreatePass(context.Background(), 7,
		map[string]any{"Name": "John"},
		map[string]string{
			"icon":   iconPath,
			"banner": iconPath, // not a slot
		})
	require.NoError(t, err)
	assert.Equal(t, "https://pw.io/p/s", pass.URL)
}

func TestCreatePassByName_EscapesName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/templates/names/Event%20Ticket/pass", r.URL.EscapedPath())
		w.Write([]byte(`{"passTypeIdentifier":"p","serialNumber":"s"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.CreatePassByName(context.Background(), "Event Ticket", nil, nil)
	require.NoError(t, err)
}

func TestDownloadPass_ReturnsBinary(t *testing.T) {
	archive := []byte{0x50, 0x4b, 0x03, 0x04, 0xde, 0xad, 0xbe, 0xef}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/passes/pass.example.id/serial-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/vnd.apple.pkpass")
		w.Write(archive)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	data, err := client.DownloadPass(context.Background(), "pass.example.id", "serial-1")
	require.NoError(t, err)
	assert.Equal(t, archive, data)
}

func TestGetPassURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/passes/pass.example.id/serial-1/url", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url":"https://pw.io/p/abc"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	url, err := client.GetPassURL(context.Background(), "pass.example.id", "serial-1")
	require.NoError(t, err)
	assert.Equal(t, "https://pw.io/p/abc", url)
}

func TestEmailPass(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/passes/pass.example.id/serial-1/email", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"email":"john@example.com"}`, string(body))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.EmailPass(context.Background(), "pass.example.id", "serial-1", "john@example.com")
	require.NoError(t, err)
}

func TestCreatePass_MultipartWarnsOnSkippedImage(t *testing.T) {
	var logBuf strings.Builder
	iconPath := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(iconPath, pngBytes, 0644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"passTypeIdentifier":"p","serialNumber":"s"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{
		BaseURL: server.URL,
		AppKey:  "test-key",
		Logger:  zerolog.New(&logBuf),
	})
	require.NoError(t, err)

	_, err = client.CreatePass(context.Background(), 1, nil, map[string]string{
		"icon":   iconPath,
		"poster": iconPath,
	})
	require.NoError(t, err)
	assert.Contains(t, logBuf.String(), "skipping image")
	assert.Contains(t, logBuf.String(), "poster")
}
