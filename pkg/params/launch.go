package params

import (
	"github.com/spf13/afero"

	"github.com/jarcraft/jarcraft/pkg/options"
	"github.com/jarcraft/jarcraft/pkg/validate"
)

// Launch pairs the launcher configuration with the dependency selection that
// feeds it. A bootstrap invocation validates both in one call.
type Launch struct {
	Bootstrap    BootstrapParams `yaml:"bootstrap"`
	Dependencies FetchParams     `yaml:"dependencies"`
}

// BuildLaunch validates both option bags for a bootstrap invocation. Failures
// from the two bags accumulate in declaration order: bootstrap fields first,
// then dependency fields.
func BuildLaunch(fsys afero.Fs, b options.Bootstrap, f options.Fetch) (validate.Result[Launch], error) {
	fetch, err := BuildFetch(fsys, f)
	if err != nil {
		return validate.Result[Launch]{}, err
	}
	return validate.Map2(BuildBootstrap(b), fetch, func(bp BootstrapParams, fp FetchParams) Launch {
		return Launch{Bootstrap: bp, Dependencies: fp}
	}), nil
}
