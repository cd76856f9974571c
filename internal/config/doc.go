// Package config provides sadie's configuration.
//
// # Architecture
//
// Configuration is built from layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment (SADIE_*)   │
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/sadie/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Each layer is a generic map produced by the loader sub-package. The maps
// are merged with loader.DeepMerge and decoded into a typed Config.
//
// # Basic Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	glyphs, err := cfg.Charset.GlyphSet()
package config
