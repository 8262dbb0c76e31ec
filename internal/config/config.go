// Package config loads settings shared by command line tools.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ava12/parsec"
	"github.com/ava12/parsec/source"
)

// Error codes used by config loader:
const (
	UnknownFormatError = parsec.ConfigErrors + iota
	ReadError
	DecodeError
	WrongValueError
)

// DefaultPrecision is the number of significant digits used to print numbers.
const DefaultPrecision = 12

// Config holds input handling and output settings.
type Config struct {
	// Trim is "", "both", "start", or "end"; empty value disables trimming.
	Trim               string `toml:"trim" yaml:"trim"`
	AllowTrailingInput bool   `toml:"allow_trailing_input" yaml:"allow_trailing_input"`
	NormalizeNewlines  bool   `toml:"normalize_newlines" yaml:"normalize_newlines"`
	Verbosity          int    `toml:"verbosity" yaml:"verbosity"`
	Precision          int    `toml:"precision" yaml:"precision"`
}

func Default() *Config {
	return &Config{Trim: "both", NormalizeNewlines: true, Precision: DefaultPrecision}
}

// Load reads config file. Format is chosen by extension: .toml, .yaml, or .yml.
// Settings missing in the file keep default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
		return nil, parsec.FormatError(UnknownFormatError, "unknown config format %q in %s", ext, path)
	}

	data, e := os.ReadFile(path)
	if e != nil {
		return nil, parsec.FormatError(ReadError, "cannot read config: %s", e)
	}

	c := Default()
	if ext == ".toml" {
		_, e = toml.Decode(string(data), c)
	} else {
		e = yaml.Unmarshal(data, c)
	}
	if e != nil {
		return nil, parsec.FormatError(DecodeError, "failed to parse config %s: %s", path, e)
	}

	if e = c.Validate(); e != nil {
		return nil, e
	}
	return c, nil
}

// Validate checks setting values.
func (c *Config) Validate() error {
	if c.Trim != "" {
		if _, f := source.ParseSide(c.Trim); !f {
			return parsec.FormatError(WrongValueError, "wrong trim side %q, expecting start, end, or both", c.Trim)
		}
	}
	if c.Precision <= 0 || c.Precision > 17 {
		return parsec.FormatError(WrongValueError, "precision must be in 1..17, got %d", c.Precision)
	}
	return nil
}

// Options converts settings to parsec.Run options.
func (c *Config) Options() []parsec.Option {
	var res []parsec.Option
	if c.NormalizeNewlines {
		res = append(res, parsec.NormalizeNewlines())
	}
	if side, f := source.ParseSide(c.Trim); f && c.Trim != "" {
		res = append(res, parsec.Trim(side, nil))
	}
	if c.AllowTrailingInput {
		res = append(res, parsec.AllowTrailingInput())
	}
	return res
}
