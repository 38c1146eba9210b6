// Package inject merges command-line NAME=VALUE variables into a
// render context. Values may reference workspace status variables
// as {VAR}; references are expanded from stamp info files before
// the variable lands in the context.
package inject

import (
	"fmt"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"
)

// LoadStamps reads workspace status files and merges them into a
// single map. Each line is "KEY VALUE" with the first space as
// delimiter. Lines without a space are silently skipped; later
// files override earlier ones.
func LoadStamps(
	infoFiles []string,
) (map[string]interface{}, error) {
	const errCtx = "loading stamps"

	stamps := make(map[string]interface{})

	for _, sf := range infoFiles {
		content, err := os.ReadFile(sf) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		for _, line := range strings.Split(
			string(content), "\n",
		) {
			parts := strings.SplitN(line, " ", 2)
			if len(parts) == 2 {
				stamps[parts[0]] = parts[1]
			}
		}
	}

	return stamps, nil
}

// Injector merges variables into context values, expanding stamp
// references inside their values.
type Injector struct {
	// StampInfoFiles are workspace status file paths consulted
	// for {VAR} references inside variable values.
	StampInfoFiles []string
}

// Apply stores each NAME=VALUE pair from vars into the context
// object, returning the updated context. A nil context becomes a
// fresh object; any other non-object context cannot accept
// variables and is an error. Unknown {VAR} references inside
// values are preserved as-is.
func (in *Injector) Apply(
	context interface{},
	vars []string,
) (interface{}, error) {
	const errCtx = "injecting variables"

	if len(vars) == 0 {
		return context, nil
	}

	obj, err := contextObject(context)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	stamps, err := LoadStamps(in.StampInfoFiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	for _, vr := range vars {
		parts := strings.SplitN(vr, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf(
				"%s: variable must be NAME=value, got %s",
				errCtx, vr,
			)
		}

		obj[parts[0]] = fasttemplate.ExecuteStringStd(
			parts[1], "{", "}", stamps,
		)
	}

	return obj, nil
}

// contextObject returns the context as a mutable object, creating
// one when the context is nil.
func contextObject(
	context interface{},
) (map[string]interface{}, error) {
	if context == nil {
		return make(map[string]interface{}), nil
	}

	obj, ok := context.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf(
			"context is %T, variables need an object root",
			context,
		)
	}

	return obj, nil
}
