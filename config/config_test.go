package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gqlbridge.conf")

	var conf Config
	require.NoError(t, Load([]string{path}, &conf))

	assert.Equal(t, Default.ListenPort, conf.ListenPort)
	assert.Equal(t, Default.Upstream.APIVersion, conf.Upstream.APIVersion)

	// The default must have been persisted for the next start.
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gqlbridge.conf")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"listen_port": 9090,
		"upstream": {
			"store_url": "https://my-store.myshopify.com",
			"access_token": "shpat_abc"
		}
	}`), 0644))

	var conf Config
	require.NoError(t, Load([]string{path}, &conf))

	assert.Equal(t, 9090, conf.ListenPort)
	assert.Equal(t, "https://my-store.myshopify.com", conf.Upstream.StoreURL)
	assert.Equal(t, "shpat_abc", conf.Upstream.AccessToken)
	assert.Equal(t, path, conf.OriginalPath)
}

func TestLoadTriesPathsInOrder(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.conf")
	present := filepath.Join(dir, "present.conf")
	require.NoError(t, os.WriteFile(present, []byte(`{"listen_port": 7070}`), 0644))

	var conf Config
	require.NoError(t, Load([]string{missing, present}, &conf))

	assert.Equal(t, 7070, conf.ListenPort)
	assert.Equal(t, present, conf.OriginalPath)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.conf")
	require.NoError(t, os.WriteFile(path, []byte(`{listen_port}`), 0644))

	var conf Config
	assert.Error(t, Load([]string{path}, &conf))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GQLBRIDGE_LISTENPORT", "6060")
	t.Setenv("GQLBRIDGE_UPSTREAM_ACCESSTOKEN", "shpat_env")

	path := filepath.Join(t.TempDir(), "gqlbridge.conf")
	require.NoError(t, os.WriteFile(path, []byte(`{"listen_port": 9090}`), 0644))

	var conf Config
	require.NoError(t, Load([]string{path}, &conf))

	assert.Equal(t, 6060, conf.ListenPort)
	assert.Equal(t, "shpat_env", conf.Upstream.AccessToken)
}
