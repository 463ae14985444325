package lint

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/leapstack-labs/fplint/pkg/core"
)

// AnyEnabled reports whether any option record sets key to true. Values are
// converted like DecodeOptions does, so "true" and 1 enable the flag and
// values that do not convert are ignored.
func AnyEnabled(options core.RuleOptions, key string) bool {
	for _, record := range options {
		v, ok := record[key]
		if !ok {
			continue
		}
		var enabled bool
		if err := mapstructure.WeakDecode(v, &enabled); err == nil && enabled {
			return true
		}
	}
	return false
}

// DecodeOptions decodes one option record into a T. Unknown keys are ignored
// and string values such as "true" from environment variables are converted.
func DecodeOptions[T any](record map[string]any) (T, error) {
	var out T
	if record == nil {
		return out, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, fmt.Errorf("failed to create options decoder: %w", err)
	}
	if err := dec.Decode(record); err != nil {
		var zero T
		return zero, fmt.Errorf("invalid rule options: %w", err)
	}
	return out, nil
}

// FirstOptions decodes the first option record of ctx. Invalid options are
// logged and replaced by the zero value, which is the most restrictive setting.
func FirstOptions[T any](ctx *Context) T {
	out, err := DecodeOptions[T](ctx.FirstOption())
	if err != nil {
		ctx.Logger().Warn("ignoring rule options", "error", err)
	}
	return out
}
