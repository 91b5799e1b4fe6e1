// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
//
// The encryption secret is the one setting the server cannot run without:
// every derived key comes from it, so a missing secret must stop the
// process here rather than surface as a failed request later.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Secret == "" {
		return ErrNoSecretConfigured
	}

	return nil
}
