package head

import (
	"strings"

	"github.com/matzehuels/seohelper/pkg/config"
	errs "github.com/matzehuels/seohelper/pkg/errors"
	"github.com/matzehuels/seohelper/pkg/meta"
)

// Description renders the description meta tag.
type Description struct {
	content string
	max     int
}

// NewDescription creates a description from configuration.
func NewDescription(cfg config.Description) *Description {
	d := &Description{content: strings.TrimSpace(cfg.Default), max: cfg.Max}
	if d.max <= 0 {
		d.max = config.DefaultDescriptionMax
	}
	return d
}

// Set replaces the description. An empty description renders nothing.
func (d *Description) Set(content string) *Description {
	d.content = strings.TrimSpace(content)
	return d
}

// Get returns the raw description.
func (d *Description) Get() string { return d.content }

// Max returns the maximum rendered length in runes.
func (d *Description) Max() int { return d.max }

// SetMax sets the maximum rendered length in runes.
func (d *Description) SetMax(max int) error {
	if max <= 0 {
		return errs.New(errs.ErrCodeInvalidInput, "description maximum length must be greater than 0, got %d", max)
	}
	d.max = max
	return nil
}

// Tag returns the tag that Render emits, if any.
func (d *Description) Tag() (*meta.Meta, bool) {
	m, err := meta.New("description", limit(plain(d.content), d.max), meta.AttrName, "")
	if err != nil {
		return nil, false
	}
	return m, true
}

// Render returns the description <meta> element, or "" when empty.
func (d *Description) Render() string {
	if m, ok := d.Tag(); ok {
		return m.Render()
	}
	return ""
}

// String implements fmt.Stringer.
func (d *Description) String() string { return d.Render() }
