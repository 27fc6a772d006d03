package redact

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rabobank/bindingsview/model"
)

func TestRedactSensitiveKeys(t *testing.T) {
	in := model.JSON{
		"password": "pw",
		"nested":   map[string]interface{}{"access_token": "tok", "keep": 1},
		"arr":      []interface{}{map[string]interface{}{"secret": "s", "plain": "x"}},
		"host":     "db.local",
	}
	got := Value(in).(model.JSON)
	require.Equal(t, Placeholder, got["password"])
	require.Equal(t, "db.local", got["host"])
	nested := got["nested"].(map[string]interface{})
	require.Equal(t, Placeholder, nested["access_token"])
	require.Equal(t, 1, nested["keep"])
	first := got["arr"].([]interface{})[0].(map[string]interface{})
	require.Equal(t, Placeholder, first["secret"])
	require.Equal(t, "x", first["plain"])
}

func TestRedactMatchesByContainment(t *testing.T) {
	got := Value(map[string]interface{}{
		"description":   "not sensitive, no term matches",
		"access_key_id": "AKIA...",
		"jdbcUrl":       "jdbc:postgresql://...",
	}).(map[string]interface{})
	require.Equal(t, "not sensitive, no term matches", got["description"])
	require.Equal(t, Placeholder, got["access_key_id"])
	require.Equal(t, Placeholder, got["jdbcUrl"])
}

func TestRedactIdempotent(t *testing.T) {
	in := model.JSON{
		"password": "pw",
		"deep":     map[string]interface{}{"cert": "pem", "list": []interface{}{"a", map[string]interface{}{"uri": "u"}}},
		"n":        3.14,
	}
	once := Value(in)
	twice := Value(once)
	require.Equal(t, once, twice)
}

func TestRedactPassesScalarsAndNil(t *testing.T) {
	require.Nil(t, Value(nil))
	require.Equal(t, "text", Value("text"))
	require.Equal(t, 42, Value(42))
	require.Equal(t, []interface{}{1, "a"}, Value([]interface{}{1, "a"}))
}

func TestIsSensitive(t *testing.T) {
	require.True(t, IsSensitive("PASSWORD"))
	require.True(t, IsSensitive("my_api_key"))
	require.True(t, IsSensitive("Certificate"))
	require.False(t, IsSensitive("description"))
	require.False(t, IsSensitive("hostname"))
}

func TestMappingNil(t *testing.T) {
	require.Nil(t, Mapping(nil))
}
