package serve

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/config"
)

func TestValidateServeArgs(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name    string
		listen  string
		want    string
		wantErr string
	}{
		{
			name: "Default from config",
			want: config.DefaultListenAddr,
		},
		{
			name:   "Flag overrides config",
			listen: " 0.0.0.0:8081 ",
			want:   "0.0.0.0:8081",
		},
		{
			name:    "Missing port",
			listen:  "localhost",
			wantErr: `the 'listen' flag is invalid: listen address "localhost" must be in host:port form`,
		},
		{
			name:    "Port is not a number",
			listen:  "localhost:http",
			wantErr: `the 'listen' flag is invalid: listen address "localhost:http" has an invalid port`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateServeArgs(&RunOptionsServe{Listen: tt.listen}, cfg)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	Init(config.Default())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, ln, hclog.NewNullLogger())
	}()

	url := "http://" + ln.Addr().String() + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
