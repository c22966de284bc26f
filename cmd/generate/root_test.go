package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromViper_Missing(t *testing.T) {
	v := viper.New()
	v.Set("package", "com.example.api")

	_, err := configFromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--schema")
	assert.Contains(t, err.Error(), "--license-header")
	assert.NotContains(t, err.Error(), "--package")
}

func TestConfigFromViper_BadLogLevel(t *testing.T) {
	v := viper.New()
	v.Set("schema", "s.json")
	v.Set("license-header", "l.txt")
	v.Set("package", "p")
	v.Set("log-level", "loud")

	_, err := configFromViper(v)
	assert.ErrorContains(t, err, "invalid log level")
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.json")
	license := filepath.Join(dir, "license.txt")
	output := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(schema, []byte(`{"data":{"__schema":{"types":[{"kind":"SCALAR","name":"Decimal"}]}}}`), 0o644))
	require.NoError(t, os.WriteFile(license, []byte("// LICENSE\n"), 0o644))

	cfgFile := filepath.Join(dir, "gqljavagen.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(
		"schema: "+schema+"\n"+
			"license-header: "+license+"\n"+
			"package: com.example.api\n"+
			"log-level: error\n"), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", cfgFile, "--output", output})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(output, "Schema.java"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("// LICENSE\n")))
	assert.Contains(t, string(data), "package com.example.api;")
}

func TestRootCmd_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GQLJAVAGEN_SCHEMA", filepath.Join(dir, "missing.json"))
	t.Setenv("GQLJAVAGEN_LICENSE_HEADER", filepath.Join(dir, "license.txt"))
	t.Setenv("GQLJAVAGEN_PACKAGE", "com.example.api")
	t.Setenv("GQLJAVAGEN_LOG_LEVEL", "error")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--output", filepath.Join(dir, "out")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorContains(t, err, "loading schema")
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "generate dev")
}
