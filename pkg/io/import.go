package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	errs "github.com/matzehuels/seohelper/pkg/errors"
	"github.com/matzehuels/seohelper/pkg/meta"
)

// ReadJSON decodes a JSON snapshot from r.
//
// The input must be a JSON object with a "groups" array. Each group needs a
// "name" and a "tags" array; each tag is either {"html": "..."} or
// {"attribute": "name"|"property", "key": "...", "content": "..."}.
//
// ReadJSON returns an INVALID_INPUT error if the JSON is malformed, a group
// has no name, or a tag is neither a fragment nor a complete meta tag. The
// error names the offending group and tag index. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode snapshot")
	}
	if s.Groups == nil {
		s.Groups = []Group{}
	}

	for i, g := range s.Groups {
		if strings.TrimSpace(g.Name) == "" {
			return nil, errs.New(errs.ErrCodeInvalidInput, "group %d: name is required", i)
		}
		for j, t := range g.Tags {
			if err := validateTag(t); err != nil {
				return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "group %s: tag %d", g.Name, j)
			}
		}
	}
	return &s, nil
}

func validateTag(t Tag) error {
	if t.HTML != "" {
		if t.Key != "" || t.Content != "" || t.Attribute != "" {
			return errors.New("html fragments cannot carry attribute, key or content")
		}
		return nil
	}
	switch meta.Attribute(t.Attribute) {
	case meta.AttrName, meta.AttrProperty:
	default:
		return fmt.Errorf("unsupported attribute %q", t.Attribute)
	}
	_, err := meta.New(t.Key, t.Content, meta.Attribute(t.Attribute), "")
	return err
}

// ImportJSON reads a JSON snapshot file at path.
//
// ImportJSON returns a FILE_NOT_FOUND error when the file does not exist and
// the same validation errors as [ReadJSON] otherwise.
func ImportJSON(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "snapshot %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
