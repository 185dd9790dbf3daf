package cli

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/mend/pkg"
)

// ErrConfig is returned when the configuration file is not valid YAML.
var ErrConfig = pkg.NewError("invalid configuration")

// load is a [kong.ConfigurationLoader] for YAML configuration files such as
// the one written by the init command.
//
// Keys are flag names. Nested mappings are joined with hyphens, so both of
// the following set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Underscores may be used in place of hyphens. Command-line flags override
// configuration values.
func load(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, ErrConfig.Wrap(err)
	}

	c := make(config)
	c.flatten("", doc)

	return c, nil
}

// config implements [kong.Resolver] over a flattened YAML document.
type config map[string]any

func (c config) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		name := strings.ReplaceAll(prefix+key, "_", "-")

		switch v := value.(type) {
		case map[string]any:
			c.flatten(name+"-", v)
		case uint64:
			c[name] = strconv.FormatUint(v, 10)
		case int64:
			c[name] = strconv.FormatInt(v, 10)
		case int:
			c[name] = strconv.Itoa(v)
		case float64:
			c[name] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			c[name] = v
		}
	}
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	return nil, nil
}
