package config

import (
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "$ ", cfg.Prompt)
	assert.True(t, cfg.PathCache)

	// Relative files can't be resolved without a directory.
	assert.Equal(t, "", cfg.HistoryPath())
	assert.False(t, cfg.HasEventLog())
}

func TestLoad(t *testing.T) {
	cases := map[string]struct {
		contents string
		wantErr  string
	}{
		"valid":          {contents: "prompt: '> '\ncolor: never\n"},
		"unknown field":  {contents: "prompt: '> '\ncolor: never\nbogus: 1\n", wantErr: "bogus"},
		"missing prompt": {contents: "color: never\n", wantErr: "prompt"},
		"bad color":      {contents: "prompt: '> '\ncolor: rainbow\n", wantErr: "color"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			assert.NoError(t, afero.WriteFile(fsys, "/etc/minish/config.yaml", []byte(tc.contents), 0600))

			cfg, err := Load(fsys, "/etc/minish")
			if tc.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "> ", cfg.Prompt)
			assert.Equal(t, ColorNever, cfg.Color)
		})
	}
}

func TestLoad_configFilePath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fsys, "/cfg/config.yaml", defaultConfigData, 0600))

	cfg, err := Load(fsys, "/cfg/config.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "/cfg", cfg.Dir())
	assert.Equal(t, filepath.Join("/cfg", "history"), cfg.HistoryPath())
}

func TestLoad_missing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nowhere")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
