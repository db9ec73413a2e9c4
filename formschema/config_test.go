package formschema_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/micron/formschema"
)

func TestConfigLoadDefaultsYieldsToExplicitFlags(t *testing.T) {
	t.Parallel()

	cfg := formschema.NewConfig()
	flags := pflag.NewFlagSet("schema", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"--schema-title=Explicit"}))

	yaml := []byte("title: FromConfig\ndescription: Generated from config\ndraft: 6\n")
	require.NoError(t, cfg.LoadDefaults(yaml, flags))

	assert.Equal(t, "Explicit", cfg.Title, "explicit flag must win over config default")
	assert.Equal(t, "Generated from config", cfg.Description, "config default applies when flag unset")
	assert.Equal(t, 6, cfg.Draft, "config default applies when flag unset")
}

func TestConfigLoadDefaultsLeavesZeroValuesUntouched(t *testing.T) {
	t.Parallel()

	cfg := formschema.NewConfig()
	flags := pflag.NewFlagSet("schema", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse(nil))
	require.NoError(t, cfg.LoadDefaults([]byte("{}"), flags))

	assert.Empty(t, cfg.Title)
	assert.Equal(t, 7, cfg.Draft)
}
