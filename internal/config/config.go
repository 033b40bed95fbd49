// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the dictionary builder's settings from a YAML file
// and KTY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ianlewis/go-kty/tag"
)

// ErrInvalid indicates that the configuration is invalid.
var ErrInvalid = errors.New("invalid config")

// Config holds the builder settings.
type Config struct {
	// BaseURL is the URL that dictionaries are published under.
	BaseURL string `yaml:"base_url" env:"KTY_BASE_URL" env-default:"https://huggingface.co/datasets/daxida/test-dataset/resolve/main"`

	// Offline disables update URLs in dictionary indexes.
	Offline bool `yaml:"offline" env:"KTY_OFFLINE"`

	Author      string `yaml:"author"      env:"KTY_AUTHOR"      env-default:"kty contributors"`
	URL         string `yaml:"url"         env:"KTY_URL"         env-default:"https://github.com/daxida/kty"`
	Description string `yaml:"description" env:"KTY_DESCRIPTION" env-default:"Dictionaries for various language pairs generated from Wiktionary data, via Kaikki and kty."`
	Attribution string `yaml:"attribution" env:"KTY_ATTRIBUTION" env-default:"https://kaikki.org/"`

	// BankSize is the number of rows per term bank file.
	BankSize int `yaml:"bank_size" env:"KTY_BANK_SIZE" env-default:"25000"`

	// Workers is the number of concurrent workers. Zero uses one worker per
	// CPU.
	Workers int `yaml:"workers" env:"KTY_WORKERS"`

	// TagOrderPath and TagInfoPath replace the embedded tag tables. Both
	// must be set together.
	TagOrderPath string `yaml:"tag_order_path" env:"KTY_TAG_ORDER_PATH"`
	TagInfoPath  string `yaml:"tag_info_path"  env:"KTY_TAG_INFO_PATH"`

	// PronunciationCategories are the tag categories kept on pronunciations.
	PronunciationCategories []string `yaml:"pronunciation_categories" env:"KTY_PRONUNCIATION_CATEGORIES" env-separator:"," env-default:"dialect,region"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults. If path is empty only the environment
// is read.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrInvalid, path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%w: read env: %w", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.BankSize <= 0 {
		return fmt.Errorf("%w: bank_size must be positive, got %d", ErrInvalid, c.BankSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	}
	if (c.TagOrderPath == "") != (c.TagInfoPath == "") {
		return fmt.Errorf("%w: tag_order_path and tag_info_path must be set together", ErrInvalid)
	}
	if !c.Offline {
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: base_url %q", ErrInvalid, c.BaseURL)
		}
	}
	return nil
}

// PublishURL returns the base URL dictionaries are published under, or the
// empty string when offline.
func (c *Config) PublishURL() string {
	if c.Offline {
		return ""
	}
	return c.BaseURL
}

// Table returns the configured tag table.
func (c *Config) Table() (*tag.Table, error) {
	if c.TagOrderPath == "" {
		return tag.Default()
	}
	return tag.LoadFiles(c.TagOrderPath, c.TagInfoPath)
}
