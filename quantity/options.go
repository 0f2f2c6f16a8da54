// SPDX-License-Identifier: MIT

package quantity

import "go.uber.org/zap"

// DefaultUseCache enables the process-wide prefix-candidate memo.
const DefaultUseCache = true

// Option configures an optimizer run. Constructors panic only on values
// that are programmer errors.
type Option func(*options)

type options struct {
	logger   *zap.Logger // never nil; zap.NewNop() by default
	useCache bool        // DefaultUseCache
}

// WithLogger routes per-axis prefix decisions to logger at Debug level.
// Panics if logger is nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = logger }
}

// WithoutCache computes prefix candidates afresh instead of consulting the
// shared memo.
func WithoutCache() Option {
	return func(o *options) { o.useCache = false }
}

func gatherOptions(opts ...Option) options {
	o := options{logger: zap.NewNop(), useCache: DefaultUseCache}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
