package docstore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	raw := `
[store]
type = "s3"
s3_bucket = "wills"
s3_region = "eu-central-1"
s3_endpoint = "http://127.0.0.1:9000"
s3_path_style = true
`
	cfg, err := ReadConfig(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "s3", cfg.Store.Type)
	assert.Equal(t, "wills", cfg.Store.S3Bucket)
	assert.Equal(t, "eu-central-1", cfg.Store.S3Region)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Store.S3Endpoint)
	assert.True(t, cfg.Store.S3PathStyle)

	_, err = ReadConfig(strings.NewReader("[store"))
	assert.Error(t, err)
}

func TestConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docstore.toml")
	want := &Config{Store: StoreConfig{Type: "filesystem", Root: "/tmp/docs"}}

	var buf bytes.Buffer
	require.NoError(t, WriteConfig(&buf, want))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	got, err := ReadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ReadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	cases := map[string]struct {
		cfg     StoreConfig
		wantErr bool
	}{
		"memory": {
			cfg: StoreConfig{Type: "memory"},
		},
		"filesystem": {
			cfg: StoreConfig{Type: "filesystem", Root: t.TempDir()},
		},
		"filesystem without root": {
			cfg:     StoreConfig{Type: "filesystem"},
			wantErr: true,
		},
		"s3": {
			cfg: StoreConfig{
				Type:        "s3",
				S3Bucket:    "wills",
				S3Region:    "us-east-1",
				S3AccessKey: "key",
				S3SecretKey: "secret",
			},
		},
		"s3 without bucket": {
			cfg:     StoreConfig{Type: "s3", S3Region: "us-east-1"},
			wantErr: true,
		},
		"unknown": {
			cfg:     StoreConfig{Type: "tape"},
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			s, err := NewFromConfig(context.Background(), tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}
