package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/transliterate"
	"github.com/npillmayer/transliterate/builtin"
	"github.com/npillmayer/transliterate/tomlprofiles"
)

// commandContext carries flag values shared by all sub-commands and the
// registry built from them.
type commandContext struct {
	profilesFile *string
	registry     *transliterate.Registry
}

func newCommandContext(profilesFile *string) *commandContext {
	return &commandContext{profilesFile: profilesFile}
}

// ensureRegistry returns the built-in registry, extended by the profiles of
// the --profiles file if one was given.
func (c *commandContext) ensureRegistry() (*transliterate.Registry, error) {
	if c.registry != nil {
		return c.registry, nil
	}
	reg := builtin.Registry()
	if c.profilesFile != nil && *c.profilesFile != "" {
		f, err := os.Open(*c.profilesFile)
		if err != nil {
			return nil, fmt.Errorf("open profiles: %w", err)
		}
		defer f.Close()
		extra, err := tomlprofiles.LoadProfiles(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", *c.profilesFile, err)
		}
		if reg, err = reg.With(extra...); err != nil {
			return nil, fmt.Errorf("%s: %w", *c.profilesFile, err)
		}
	}
	c.registry = reg
	return reg, nil
}

// profile resolves key to a registered profile. Unlike the library, the CLI
// reports unknown keys instead of silently echoing its input.
func (c *commandContext) profile(key string) (*transliterate.Profile, error) {
	reg, err := c.ensureRegistry()
	if err != nil {
		return nil, err
	}
	p, ok := reg.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("unknown language %q (available: %v)", key, reg.Keys())
	}
	return p, nil
}
