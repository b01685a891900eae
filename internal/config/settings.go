// Package config persists the shop-level settings that document
// generation stamps into every filled form.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	// Settings keys
	KeyFranchiseName    = "franchise_name"
	KeyShopName         = "shop_name"
	KeyStoreManagerName = "store_manager_name"
	KeyDate             = "date"

	// DateLayout is the layout of the date setting.
	DateLayout = "02/01/2006"

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Keys lists every settings key in display order.
var Keys = []string{KeyFranchiseName, KeyShopName, KeyStoreManagerName, KeyDate}

// Settings holds the persisted configuration backed by a JSON file.
// Reads that find no file fall back to defaults, and the file is
// created on the first write.
type Settings struct {
	v    *viper.Viper
	path string
}

// Load reads the settings file at path. A missing or unreadable file is
// replaced with defaults so a corrupt settings file never blocks a run.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault(KeyFranchiseName, "")
	v.SetDefault(KeyShopName, "")
	v.SetDefault(KeyStoreManagerName, "")
	v.SetDefault(KeyDate, time.Now().Format(DateLayout))

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				log.Printf("settings %s unreadable, rewriting defaults: %v", path, err)
			}
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, DefaultDirPerm); err != nil {
				return nil, fmt.Errorf("create settings directory: %w", err)
			}
		}
		if err := v.WriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("write default settings %s: %w", path, err)
		}
	}

	return &Settings{v: v, path: path}, nil
}

// Path returns the location of the backing file.
func (s *Settings) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *Settings) Get(key string) string {
	return s.v.GetString(key)
}

// Set stores value under key and persists the file immediately.
func (s *Settings) Set(key, value string) error {
	s.v.Set(key, value)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	return nil
}

// ReferenceDate parses the date setting. An unparseable or empty value
// is an error since every generated document is stamped with it.
func (s *Settings) ReferenceDate() (time.Time, error) {
	raw := s.Get(KeyDate)
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("settings date %q: expected DD/MM/YYYY", raw)
	}
	return t, nil
}

// String returns a string representation of the settings.
func (s *Settings) String() string {
	return fmt.Sprintf("Settings{FranchiseName: %s, ShopName: %s, StoreManagerName: %s, Date: %s}",
		s.Get(KeyFranchiseName), s.Get(KeyShopName), s.Get(KeyStoreManagerName), s.Get(KeyDate))
}
