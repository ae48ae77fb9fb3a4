package meta

import "strings"

// Join joins the non-empty fragments with a line break.
func Join(fragments ...string) string {
	kept := fragments[:0:0]
	for _, f := range fragments {
		if f != "" {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, "\n")
}

// RenderAll renders each part and joins the non-empty results.
func RenderAll(parts ...Renderable) string {
	fragments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == nil {
			continue
		}
		fragments = append(fragments, p.Render())
	}
	return Join(fragments...)
}
