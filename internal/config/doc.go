// Package config provides configuration parsing for the markup command.
//
// The configuration is stored in markup.json in the working directory.
// This package handles loading, saving, and validating configuration, and
// applying MARKUP_* environment overrides on top of the file.
//
// # Configuration File Structure
//
//	{
//	  "format": "yaml",
//	  "logLevel": "info",
//	  "attributes": {
//	    "class": "tokens",
//	    "rel": "lowercase",
//	    "data-tags": "tokens"
//	  }
//	}
//
// Each attribute entry maps a name to a built-in constructor kind
// (generic, tokens or lowercase). "*" changes the fallback for every name
// without an entry.
//
// # Environment
//
//	MARKUP_FORMAT=json
//	MARKUP_LOG_LEVEL=debug
//	MARKUP_ATTRIBUTES=class:tokens,rel:lowercase
//
// MARKUP_ATTRIBUTES replaces the attributes map of the file.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Apply(attribute.Default()); err != nil {
//	    log.Fatal(err)
//	}
package config
