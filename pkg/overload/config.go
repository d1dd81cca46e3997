package overload

import (
	"bytes"
	"flag"
	"fmt"
	"io"

	"github.com/drone/envsubst"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/grafana/exprtype/pkg/exprtype"
	"github.com/grafana/exprtype/pkg/util"
)

const (
	// TieBreakError rejects a call when more than one overload shares the
	// smallest total distance.
	TieBreakError = "error"
	// TieBreakFirstRegistered picks the earliest registered overload among
	// those sharing the smallest total distance.
	TieBreakFirstRegistered = "first_registered"
)

type Config struct {
	TieBreak  string           `yaml:"tie_break"`
	Functions []FunctionConfig `yaml:"functions"`
}

// FunctionConfig declares one overload of a function.
type FunctionConfig struct {
	Name    string   `yaml:"name"`
	Params  []string `yaml:"params"`
	Returns string   `yaml:"returns"`
}

// RegisterFlagsAndApplyDefaults registers flags and applies defaults
func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.StringVar(&cfg.TieBreak, util.PrefixConfig(prefix, "tie-break"), TieBreakError,
		fmt.Sprintf("How to choose between overloads with the same total distance (%s or %s).", TieBreakError, TieBreakFirstRegistered))
}

func (cfg *Config) Validate() error {
	switch cfg.TieBreak {
	case TieBreakError, TieBreakFirstRegistered:
	default:
		return fmt.Errorf("invalid tie_break %q, must be %s or %s", cfg.TieBreak, TieBreakError, TieBreakFirstRegistered)
	}

	_, err := cfg.Signatures()
	return err
}

// Signatures converts the configured functions into overload signatures.
func (cfg *Config) Signatures() ([]Signature, error) {
	sigs := make([]Signature, 0, len(cfg.Functions))
	for i, fn := range cfg.Functions {
		if fn.Name == "" {
			return nil, fmt.Errorf("functions[%d]: name is empty", i)
		}

		params := make([]exprtype.Type, 0, len(fn.Params))
		for _, p := range fn.Params {
			t, err := exprtype.ParseType(p)
			if err != nil {
				return nil, errors.Wrapf(err, "function %s", fn.Name)
			}
			params = append(params, t)
		}

		ret, err := exprtype.ParseType(fn.Returns)
		if err != nil {
			return nil, errors.Wrapf(err, "function %s: returns", fn.Name)
		}

		sigs = append(sigs, NewSignature(fn.Name, ret, params...))
	}
	return sigs, nil
}

// LoadConfig overlays YAML read from r onto cfg. Unknown fields are rejected.
// When expandEnv is set, ${VAR} references are substituted before parsing.
func LoadConfig(cfg *Config, r io.Reader, expandEnv bool) error {
	buff, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read config")
	}

	if expandEnv {
		s, err := envsubst.EvalEnv(string(buff))
		if err != nil {
			return errors.Wrap(err, "failed to expand env vars")
		}
		buff = []byte(s)
	}

	dec := yaml.NewDecoder(bytes.NewReader(buff))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "failed to parse config")
	}

	return cfg.Validate()
}
