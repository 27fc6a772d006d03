package sources

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rabobank/bindingsview/model"
)

func testMetaConfig() Config {
	return Config{
		ApplicationVar:   "TEST_VCAP_APPLICATION",
		AppNameVar:       "TEST_APP_NAME",
		InstanceIndexVar: "TEST_CF_INSTANCE_INDEX",
		MemoryLimitVar:   "TEST_MEMORY_LIMIT",
		DiskLimitVar:     "TEST_DISK_LIMIT",
	}
}

func TestAppMetaFromVcapApplication(t *testing.T) {
	t.Setenv("TEST_VCAP_APPLICATION", `{
		"cf_api": "https://api.sys.example.com",
		"application_name": "myapp",
		"application_uris": ["myapp.apps.example.com"],
		"instance_index": 0,
		"space_name": "dev",
		"organization_name": "acme",
		"limits": {"mem": 1024, "disk": 2048}
	}`)

	meta := testMetaConfig().AppMeta()
	require.Equal(t, "https://api.sys.example.com", meta.CfApi)
	require.Equal(t, "myapp", meta.AppName)
	require.Equal(t, []string{"myapp.apps.example.com"}, meta.AppUris)
	require.Equal(t, "0", meta.InstanceIndex)
	require.Equal(t, "dev", meta.SpaceName)
	require.Equal(t, "acme", meta.OrgName)
	require.Equal(t, "1024", meta.MemoryLimit)
	require.Equal(t, "2048", meta.DiskLimit)
}

func TestAppMetaEnvironmentFallbacks(t *testing.T) {
	t.Setenv("TEST_VCAP_APPLICATION", "")
	t.Setenv("TEST_APP_NAME", "fallback-app")
	t.Setenv("TEST_CF_INSTANCE_INDEX", "3")
	t.Setenv("TEST_MEMORY_LIMIT", "512M")
	t.Setenv("TEST_DISK_LIMIT", "1G")

	meta := testMetaConfig().AppMeta()
	require.Equal(t, model.Placeholder, meta.CfApi)
	require.Equal(t, "fallback-app", meta.AppName)
	require.Equal(t, []string{}, meta.AppUris)
	require.Equal(t, "3", meta.InstanceIndex)
	require.Equal(t, model.Placeholder, meta.SpaceName)
	require.Equal(t, model.Placeholder, meta.OrgName)
	require.Equal(t, "512M", meta.MemoryLimit)
	require.Equal(t, "1G", meta.DiskLimit)
}

func TestAppMetaAllPlaceholders(t *testing.T) {
	t.Setenv("TEST_VCAP_APPLICATION", "")
	t.Setenv("TEST_APP_NAME", "")
	t.Setenv("TEST_CF_INSTANCE_INDEX", "")
	t.Setenv("TEST_MEMORY_LIMIT", "")
	t.Setenv("TEST_DISK_LIMIT", "")

	meta := testMetaConfig().AppMeta()
	require.Equal(t, model.Placeholder, meta.AppName)
	require.Equal(t, model.Placeholder, meta.InstanceIndex)
	require.Equal(t, model.Placeholder, meta.MemoryLimit)
	require.Equal(t, model.Placeholder, meta.DiskLimit)
	require.Equal(t, []string{}, meta.AppUris)
}

func TestAppMetaNameFallsBackToSecondaryField(t *testing.T) {
	t.Setenv("TEST_VCAP_APPLICATION", `{"name": "plain-name"}`)
	t.Setenv("TEST_APP_NAME", "")
	meta := testMetaConfig().AppMeta()
	require.Equal(t, "plain-name", meta.AppName)
}

func TestAppMetaMalformedVcapApplication(t *testing.T) {
	t.Setenv("TEST_VCAP_APPLICATION", "not json")
	t.Setenv("TEST_APP_NAME", "from-env")
	meta := testMetaConfig().AppMeta()
	require.Equal(t, "from-env", meta.AppName)
	require.Equal(t, model.Placeholder, meta.SpaceName)
}
