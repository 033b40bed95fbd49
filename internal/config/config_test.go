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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-kty/internal/config"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kty.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
bank_size: 100
author: me
pronunciation_categories:
  - dialect
`)
	t.Setenv("KTY_URL", "https://example.com/kty")

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := &config.Config{
		BaseURL:                 "https://huggingface.co/datasets/daxida/test-dataset/resolve/main",
		Author:                  "me",
		URL:                     "https://example.com/kty",
		Description:             "Dictionaries for various language pairs generated from Wiktionary data, via Kaikki and kty.",
		Attribution:             "https://kaikki.org/",
		BankSize:                100,
		PronunciationCategories: []string{"dialect"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load (-want, +got):\n%s", diff)
	}
}

func TestLoad_env(t *testing.T) {
	t.Setenv("KTY_BANK_SIZE", "10")
	t.Setenv("KTY_OFFLINE", "true")
	t.Setenv("KTY_PRONUNCIATION_CATEGORIES", "region,dialect")

	got, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.BankSize != 10 {
		t.Errorf("BankSize: want 10, got %d", got.BankSize)
	}
	if got.PublishURL() != "" {
		t.Errorf("PublishURL: want empty, got %q", got.PublishURL())
	}
	if diff := cmp.Diff([]string{"region", "dialect"}, got.PronunciationCategories); diff != "" {
		t.Errorf("PronunciationCategories (-want, +got):\n%s", diff)
	}
}

func TestLoad_missing(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Load: want ErrInvalid, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load: want os.ErrNotExist, got %v", err)
	}
}

func TestLoad_badYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "bank_size: [1, 2\n")
	if _, err := config.Load(path); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Load: want ErrInvalid, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() config.Config {
		return config.Config{
			BaseURL:  "https://example.com",
			BankSize: 1,
		}
	}

	tests := []struct {
		name   string
		modify func(*config.Config)
		err    error
	}{
		{
			name:   "valid",
			modify: func(*config.Config) {},
		},
		{
			name:   "bank size",
			modify: func(c *config.Config) { c.BankSize = 0 },
			err:    config.ErrInvalid,
		},
		{
			name:   "workers",
			modify: func(c *config.Config) { c.Workers = -1 },
			err:    config.ErrInvalid,
		},
		{
			name:   "tag paths",
			modify: func(c *config.Config) { c.TagOrderPath = "order.json" },
			err:    config.ErrInvalid,
		},
		{
			name:   "base url",
			modify: func(c *config.Config) { c.BaseURL = "ftp://example.com" },
			err:    config.ErrInvalid,
		},
		{
			name: "offline",
			modify: func(c *config.Config) {
				c.BaseURL = ""
				c.Offline = true
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := valid()
			tc.modify(&c)
			if err := c.Validate(); !errors.Is(err, tc.err) {
				t.Errorf("Validate: want %v, got %v", tc.err, err)
			}
		})
	}
}

func TestConfig_Table(t *testing.T) {
	t.Parallel()

	c := &config.Config{}
	table, err := c.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if _, ok := table.Lookup("plural"); !ok {
		t.Error("Lookup(plural): not found")
	}
}
