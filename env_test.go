package declopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declopt/declopt/types"
)

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "APP_PORT", EnvName("app", "port"))
	assert.Equal(t, "APP_LOG_LEVEL", EnvName("app", "logLevel"))
	assert.Equal(t, "MY_TOOL_MAX_SIZE", EnvName("my-tool", "maxSize"))
}

func TestEnvFallback(t *testing.T) {
	defs := map[string]string{
		"port":    "-p,--port:number=8080",
		"verbose": "--verbose:boolean",
		"tags":    "--tag:string[]",
		"mode":    "--mode:string",
	}
	env := envOf(map[string]string{
		"APP_PORT":    "9090",
		"APP_VERBOSE": "true",
		"APP_TAG":     "a, b,c",
		"APP_MODE":    "slow",
	})

	res := mustParse(t, nil, defs, WithEnvPrefix("app"), WithEnvLookup(env))
	assert.Equal(t, types.NumberOf(9090), res.Options["port"], "the environment beats the default")
	assert.Equal(t, types.BoolOf(true), res.Options["verbose"])
	assert.Equal(t, types.StringsOf([]string{"a", "b", "c"}), res.Options["tags"], "list values split on commas")
	assert.Equal(t, types.StringOf("slow"), res.Options["mode"])
}

func TestEnvDoesNotOverrideArguments(t *testing.T) {
	defs := map[string]string{"port": "--port:number"}
	env := envOf(map[string]string{"APP_PORT": "9090"})

	res := mustParse(t, []string{"--port", "7070"}, defs, WithEnvPrefix("app"), WithEnvLookup(env))
	assert.Equal(t, types.NumberOf(7070), res.Options["port"], "command-line values win")
}

func TestEnvSatisfiesRequired(t *testing.T) {
	defs := map[string]string{"name": "--name:string!"}
	env := envOf(map[string]string{"APP_NAME": "run1"})

	res := mustParse(t, nil, defs, WithEnvPrefix("app"), WithEnvLookup(env))
	assert.Equal(t, types.StringOf("run1"), res.Options["name"])

	err := failParse(t, nil, defs, WithEnvPrefix("other"), WithEnvLookup(env))
	assert.ErrorIs(t, err, ErrRequired, "a different prefix finds nothing")
}

func TestEnvDisabledWithoutPrefix(t *testing.T) {
	defs := map[string]string{"port": "--port:number=8080"}
	env := envOf(map[string]string{"PORT": "9090"})

	res := mustParse(t, nil, defs, WithEnvLookup(env))
	assert.Equal(t, types.NumberOf(8080), res.Options["port"], "no prefix, no environment lookup")
}

func TestEnvCoercionFailure(t *testing.T) {
	defs := map[string]string{"port": "-p,--port:number"}
	env := envOf(map[string]string{"APP_PORT": "not-a-port"})

	err := failParse(t, nil, defs, WithEnvPrefix("app"), WithEnvLookup(env))
	assert.ErrorIs(t, err, ErrNotANumber)
	assert.Contains(t, err.Error(), "from the environment")
	assert.Contains(t, err.Error(), "--port (-p)")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr, "environment values are user input, not settings")
}

func TestEnvBooleanCoercionFailure(t *testing.T) {
	defs := map[string]string{"verbose": "--verbose:boolean"}
	env := envOf(map[string]string{"APP_VERBOSE": "yes"})

	err := failParse(t, nil, defs, WithEnvPrefix("app"), WithEnvLookup(env))
	assert.ErrorIs(t, err, ErrNotABoolean)
}

func TestEnvNumberListCoercion(t *testing.T) {
	defs := map[string]string{"nums": "--num:number[]"}

	res := mustParse(t, nil, defs, WithEnvPrefix("app"),
		WithEnvLookup(envOf(map[string]string{"APP_NUM": "1,2.5,-3"})))
	assert.Equal(t, types.NumbersOf([]float64{1, 2.5, -3}), res.Options["nums"])

	err := failParse(t, nil, defs, WithEnvPrefix("app"),
		WithEnvLookup(envOf(map[string]string{"APP_NUM": "1,x"})))
	assert.ErrorIs(t, err, ErrNotANumber)

	res = mustParse(t, nil, defs, WithEnvPrefix("app"),
		WithEnvLookup(envOf(map[string]string{"APP_NUM": ""})))
	assert.Equal(t, types.NumbersOf(nil), res.Options["nums"], "an empty variable is the empty sequence")
}
