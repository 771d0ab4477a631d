package config_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/krkit/pkg/config"
)

type TestConfigSuccess struct {
	Env      string `env:"TEST_APP_ENV_SUCCESS" envDefault:"development"`
	MaskType int    `env:"TEST_MASK_TYPE_SUCCESS" envDefault:"1"`
	Quiet    bool   `env:"TEST_QUIET_SUCCESS" envDefault:"false"`
}

type TestConfigDefault struct {
	Env      string `env:"TEST_APP_ENV_DEFAULT" envDefault:"development"`
	MaskType int    `env:"TEST_MASK_TYPE_DEFAULT" envDefault:"1"`
}

type TestConfigCached struct {
	Value string `env:"TEST_VALUE_CACHED" envDefault:"first"`
}

type TestConfigConcurrent struct {
	Value string `env:"TEST_VALUE_CONCURRENT" envDefault:"shared"`
}

type TestConfigInvalid struct {
	MaskType int `env:"TEST_MASK_TYPE_INVALID"`
}

type TestConfigRequired struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_APP_ENV_SUCCESS", "production")
	t.Setenv("TEST_MASK_TYPE_SUCCESS", "2")
	t.Setenv("TEST_QUIET_SUCCESS", "true")

	var cfg TestConfigSuccess
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 2, cfg.MaskType)
	assert.True(t, cfg.Quiet)
}

func TestLoad_DefaultValues(t *testing.T) {
	var cfg TestConfigDefault
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 1, cfg.MaskType)
}

func TestLoad_Cached(t *testing.T) {
	var first TestConfigCached
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("TEST_VALUE_CACHED", "second")

	var second TestConfigCached
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value must be returned")
}

func TestLoad_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]TestConfigConcurrent, 10)
	errs := make([]error, 10)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = config.Load(&results[i])
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i].Value)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *TestConfigDefault
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("TEST_MASK_TYPE_INVALID", "two")
		var cfg TestConfigInvalid
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg TestConfigRequired
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	var cfg TestConfigRequired
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestParse(t *testing.T) {
	t.Run("explicit environment", func(t *testing.T) {
		var cfg TestConfigDefault
		err := config.Parse(&cfg, map[string]string{"TEST_MASK_TYPE_DEFAULT": "2"})
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.MaskType)
		assert.Equal(t, "development", cfg.Env)
	})

	t.Run("not cached", func(t *testing.T) {
		var a, b TestConfigCached
		require.NoError(t, config.Parse(&a, map[string]string{"TEST_VALUE_CACHED": "a"}))
		require.NoError(t, config.Parse(&b, map[string]string{"TEST_VALUE_CACHED": "b"}))
		assert.Equal(t, "a", a.Value)
		assert.Equal(t, "b", b.Value)
	})

	t.Run("errors", func(t *testing.T) {
		var cfg TestConfigInvalid
		assert.ErrorIs(t, config.Parse(&cfg, map[string]string{"TEST_MASK_TYPE_INVALID": "x"}), config.ErrParsingConfig)
		assert.ErrorIs(t, config.Parse[TestConfigInvalid](nil, nil), config.ErrNilPointer)
	})
}
