package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "debug", Service: "deposito-api", Out: &buf})

	l.Component("import").Info().Int("rows", 3).Msg("ok")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "deposito-api", event["service"])
	assert.Equal(t, "import", event["component"])
	assert.Equal(t, "ok", event["message"])
	assert.EqualValues(t, 3, event["rows"])
}

func TestNew_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("no debería salir")
	assert.Empty(t, buf.String())
}

func TestParseLevel_Desconocido(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
}
