// FILE: lixenwraith/mvconfig/properties_test.go
package mvconfig_test

import (
	"strings"
	"testing"

	"github.com/lixenwraith/mvconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func find(props []mvconfig.Property, key string) (string, bool) {
	for _, p := range props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

func TestPropertySources(t *testing.T) {
	t.Run("StaticPropertiesSorted", func(t *testing.T) {
		src := mvconfig.StaticProperties(map[string]string{"b": "2", "a": "1"})
		assert.Equal(t, []mvconfig.Property{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, src.Properties())
	})

	t.Run("StaticPropertiesCopiesInput", func(t *testing.T) {
		in := map[string]string{"a": "1"}
		src := mvconfig.StaticProperties(in)
		in["a"] = "changed"

		props := src.Properties()
		props[0].Value = "mutated"

		v, _ := find(src.Properties(), "a")
		assert.Equal(t, "1", v)
	})

	t.Run("EnvironDefaultTransform", func(t *testing.T) {
		t.Setenv("MVCONFIGTEST_DB_URL", "postgres://x")

		v, ok := find(mvconfig.Environ(nil).Properties(), "mvconfigtest.db.url")
		require.True(t, ok)
		assert.Equal(t, "postgres://x", v)
	})

	t.Run("EnvironCustomTransform", func(t *testing.T) {
		t.Setenv("MVCONFIGTEST_KEEP", "yes")
		t.Setenv("MVCONFIGTEST_DROP", "no")

		src := mvconfig.Environ(func(name string) string {
			if name == "MVCONFIGTEST_KEEP" {
				return "custom.keep"
			}
			return ""
		})

		props := src.Properties()
		require.Len(t, props, 1)
		assert.Equal(t, mvconfig.Property{Key: "custom.keep", Value: "yes"}, props[0])
	})

	t.Run("EnvironReadAtBuildTime", func(t *testing.T) {
		src := mvconfig.Environ(nil)
		t.Setenv("MVCONFIGTEST_LATE", "1")

		_, ok := find(src.Properties(), "mvconfigtest.late")
		assert.True(t, ok)
	})

	t.Run("DefaultEnvTransform", func(t *testing.T) {
		assert.Equal(t, "app.server.port", mvconfig.DefaultEnvTransform("APP_SERVER_PORT"))
	})

	t.Run("ArgProperties", func(t *testing.T) {
		args := []string{
			"positional",
			"--app.port=9090",
			"--app.hosts", "a,b",
			"--app.debug",
			"--",
			"--=skipped",
			"--app.last",
		}

		props := mvconfig.ArgProperties(args).Properties()
		assert.Equal(t, []mvconfig.Property{
			{Key: "app.port", Value: "9090"},
			{Key: "app.hosts", Value: "a,b"},
			{Key: "app.debug", Value: "true"},
			{Key: "app.last", Value: "true"},
		}, props)
	})

	t.Run("MultiSourceLaterWins", func(t *testing.T) {
		src := mvconfig.MultiSource(
			mvconfig.StaticProperties(map[string]string{"app.k": "first"}),
			nil,
			mvconfig.ArgProperties([]string{"--app.k=second"}),
		)

		m, err := mvconfig.NewBuilder().
			WithProperties(src).
			WithPrefix("app").
			WithSystemOverrides().
			Build()
		require.NoError(t, err)

		v, _ := m.Values("k")
		assert.Equal(t, []string{"second"}, v)
	})

	t.Run("PropertySourceFunc", func(t *testing.T) {
		calls := 0
		src := mvconfig.PropertySourceFunc(func() []mvconfig.Property {
			calls++
			return []mvconfig.Property{{Key: "app.x", Value: "1,2"}}
		})

		m, err := mvconfig.NewBuilder().
			WithProperties(src).
			WithPrefix("app").
			WithSystemDefaults().
			WithSystemOverrides().
			BuildReader(strings.NewReader("x=raw\n"))
		require.NoError(t, err)

		v, _ := m.Values("x")
		assert.Equal(t, []string{"1", "2"}, v)
		assert.Equal(t, 2, calls)
	})
}
