package tolerance

import (
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

type (
	// configFile is the top-level JSON structure.
	configFile struct {
		Tolerators map[string]ToleratorConfig `json:"tolerators"`
	}

	// ToleratorConfig holds the decoded configuration for a single
	// tolerator. Export it to embed in your own app config structs for
	// JSON or YAML unmarshaling, then call [BuildOptions] to obtain
	// functional options for [New].
	ToleratorConfig struct {
		// SwitchArgument names the per-call argument that controls
		// suppression. Optional. Example: "fail_silently".
		SwitchArgument *string `json:"switch_argument,omitempty" yaml:"switch_argument,omitempty"`
		// SwitchDefault is the suppression decision when the switch
		// argument is absent. Optional, defaults to true. Requires
		// SwitchArgument.
		SwitchDefault *bool `json:"switch_default,omitempty" yaml:"switch_default,omitempty"`
		// Reverse inverts the switch's suppression sense.
		// Optional. Requires SwitchArgument.
		Reverse *bool `json:"reverse,omitempty" yaml:"reverse,omitempty"`
		// Keep forwards the switch argument to the wrapped function
		// instead of consuming it. Optional. Requires SwitchArgument.
		Keep *bool `json:"keep,omitempty" yaml:"keep,omitempty"`
		// Recover converts panics in the wrapped function into errors
		// subject to suppression. Optional. Example: true.
		Recover *bool `json:"recover,omitempty" yaml:"recover,omitempty"`
		// Substitute is the literal value returned in place of a
		// suppressed failure. Optional. The decoded value must match the
		// tolerator's type parameter; note that JSON numbers decode to
		// float64. Example: "fallback".
		Substitute any `json:"substitute,omitempty" yaml:"substitute,omitempty"`
	}
)

// LoadConfig reads a JSON configuration file and stores the tolerator
// configurations in a [Registry]. Actual [Tolerator] instances are not
// created until [GetTolerator] is called, allowing the caller to provide
// type parameters and additional code-level options.
func LoadConfig(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tolerance: read config: %w", err)
	}

	var cfg configFile
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("tolerance: parse config: %w", err)
	}

	// Validate all tolerators eagerly so errors surface at load time.
	for name, tc := range cfg.Tolerators {
		if _, buildErr := BuildOptions(&tc); buildErr != nil {
			return nil, fmt.Errorf("tolerance: tolerator %q: %w", name, buildErr)
		}
	}

	reg := NewRegistry()
	reg.mu.Lock()
	reg.configs = cfg.Tolerators
	reg.mu.Unlock()

	return reg, nil
}

// BuildOptions converts a [ToleratorConfig] into a slice of functional
// option values suitable for [New]. Use this when you embed
// [ToleratorConfig] in your own config struct and want to build a
// tolerator without going through [LoadConfig].
func BuildOptions(tc *ToleratorConfig) ([]any, error) {
	var opts []any

	switch {
	case tc.SwitchArgument != nil:
		var swOpts []SwitchOption

		if tc.SwitchDefault != nil {
			swOpts = append(swOpts, Default(*tc.SwitchDefault))
		}

		if tc.Reverse != nil && *tc.Reverse {
			swOpts = append(swOpts, Reverse())
		}

		if tc.Keep != nil && *tc.Keep {
			swOpts = append(swOpts, Keep())
		}

		opts = append(opts, WithSwitchArgument(*tc.SwitchArgument, swOpts...))

	case tc.SwitchDefault != nil || tc.Reverse != nil || tc.Keep != nil:
		return nil, errors.New("switch options require switch_argument")
	}

	if tc.Recover != nil && *tc.Recover {
		opts = append(opts, WithRecover())
	}

	if tc.Substitute != nil {
		// Type-erased literal; asserted against T by New.
		opts = append(opts, substituteDesc{val: tc.Substitute})
	}

	return opts, nil
}

// GetTolerator retrieves a named tolerator configuration from a
// config-loaded [Registry] and returns a typed [Tolerator] ready for use.
// If the name is not found in the stored configs, a bare tolerator is
// created with only the provided opts.
//
// Additional options can be provided to augment or override the
// config-loaded settings (e.g., adding hooks, a custom clock, or a
// substitute function). User-provided options are applied after config
// options, so they take precedence.
func GetTolerator[T any](reg *Registry, name string, opts ...any) *Tolerator[T] {
	reg.mu.Lock()
	tc, ok := reg.configs[name]
	reg.mu.Unlock()

	var allOpts []any

	allOpts = append(allOpts, WithRegistry(reg))

	if ok {
		configOpts, err := BuildOptions(&tc)
		if err == nil {
			allOpts = append(allOpts, configOpts...)
		}
	}

	// User opts come last so they can override config values.
	allOpts = append(allOpts, opts...)

	return New[T](name, allOpts...)
}
