// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks every configuration group with the struct tags declared
// on it and reports the first invalid group as one of the Err*Configs values.
func (cfg *ClientConfig) validate(v *validator.Validate) error {
	if err := v.Struct(cfg.Adapter); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	if err := v.Struct(cfg.Storage.DB); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStorageConfigs, err)
	}

	if err := v.Struct(cfg.App); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	return nil
}
