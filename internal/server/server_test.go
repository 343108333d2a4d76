package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/handler"
	myHTTP "github.com/MKhiriev/go-chain-keeper/internal/handler/http"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/mock"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeBackground struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (f *fakeBackground) Start(context.Context) { f.started.Store(true) }
func (f *fakeBackground) Stop()                 { f.stopped.Store(true) }

func newTestServer(t *testing.T, bg Background) *server {
	t.Helper()
	ctrl := gomock.NewController(t)

	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.AppBuildInfo{Version: "1.2.3", Date: "N/A", Commit: "N/A"}).AnyTimes()

	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop())}

	srv, err := NewServer(handlers, bg, config.Server{Address: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{Address: ":8088"}, logger.Nop())
	assert.ErrorIs(t, err, errNothingToServe)

	_, err = NewServer(nil, nil, config.Server{Address: ":8088"}, logger.Nop())
	assert.ErrorIs(t, err, errNothingToServe)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{Address: ":0"}, logger.Nop())
	assert.Equal(t, defaultRequestTimeout, h.server.WriteTimeout)

	h = newHTTPServer(http.NotFoundHandler(), config.Server{Address: ":0", RequestTimeout: time.Second}, logger.Nop())
	assert.Equal(t, time.Second, h.server.ReadTimeout)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	bg := &fakeBackground{}
	srv := newTestServer(t, bg)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.runOn(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/version")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"version":"1.2.3"`)
	assert.True(t, bg.started.Load())

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, bg.stopped.Load())
}

func TestServer_Shutdown(t *testing.T) {
	srv := newTestServer(t, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.runOn(context.Background(), ln) }()

	srv.Shutdown()
	srv.Shutdown()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
