package overload

import (
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/exprtype/pkg/exprtype"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.RegisterFlagsAndApplyDefaults("", flag.NewFlagSet("", flag.PanicOnError))
	assert.Equal(t, TieBreakError, cfg.TieBreak)
	require.NoError(t, cfg.Validate())

	fs := flag.NewFlagSet("", flag.PanicOnError)
	cfg = Config{}
	cfg.RegisterFlagsAndApplyDefaults("overload", fs)
	require.NoError(t, fs.Parse([]string{"-overload.tie-break", TieBreakFirstRegistered}))
	assert.Equal(t, TieBreakFirstRegistered, cfg.TieBreak)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("TIE_BREAK", TieBreakFirstRegistered)

	f, err := os.Open("testdata/functions.yaml")
	require.NoError(t, err)
	defer f.Close()

	cfg := Config{}
	require.NoError(t, LoadConfig(&cfg, f, true))
	assert.Equal(t, TieBreakFirstRegistered, cfg.TieBreak)

	sigs, err := cfg.Signatures()
	require.NoError(t, err)
	require.Len(t, sigs, 6)
	assert.Equal(t, NewSignature("abs", exprtype.TypeInteger, exprtype.TypeInteger), sigs[0])
	assert.Equal(t, NewSignature("concat", exprtype.TypeString, exprtype.TypeString, exprtype.TypeString), sigs[3])
	assert.Equal(t, "now", sigs[5].Name)
	assert.Empty(t, sigs[5].Params)
}

func TestLoadConfigErrors(t *testing.T) {
	tt := []struct {
		name      string
		yaml      string
		expandEnv bool
		errSubstr string
	}{
		{
			name:      "unknown field",
			yaml:      "tie_break: error\nfoo: bar\n",
			errSubstr: "failed to parse config",
		},
		{
			name:      "invalid tie break",
			yaml:      "tie_break: random\n",
			errSubstr: `invalid tie_break "random"`,
		},
		{
			name:      "unexpanded env is an invalid tie break",
			yaml:      "tie_break: ${NOT_EXPANDED}\n",
			errSubstr: "invalid tie_break",
		},
		{
			name:      "invalid parameter type",
			yaml:      "tie_break: error\nfunctions:\n  - name: f\n    params: [VARCHAR]\n    returns: STRING\n",
			errSubstr: `function f: unknown type "VARCHAR"`,
		},
		{
			name:      "missing return type",
			yaml:      "tie_break: error\nfunctions:\n  - name: f\n    params: [STRING]\n",
			errSubstr: "function f: returns",
		},
		{
			name:      "missing name",
			yaml:      "tie_break: error\nfunctions:\n  - params: [STRING]\n    returns: STRING\n",
			errSubstr: "functions[0]: name is empty",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{}
			err := LoadConfig(&cfg, strings.NewReader(tc.yaml), tc.expandEnv)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errSubstr)
		})
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg := Config{TieBreak: TieBreakError}
	require.NoError(t, LoadConfig(&cfg, strings.NewReader(""), false))
	assert.Equal(t, TieBreakError, cfg.TieBreak)
	assert.Empty(t, cfg.Functions)
}
