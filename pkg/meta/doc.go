// Package meta implements the tag collection engine behind every block of
// seohelper output.
//
// # Overview
//
// A [Meta] is one `<meta>` element: an attribute kind ([AttrName] or
// [AttrProperty]), a key and a content string. A [Collection] is an ordered,
// keyed set of Meta entries that:
//
//   - derives each key as lowercase(trim(prefix + name))
//   - keeps keys unique (a repeated key overwrites the content in place)
//   - propagates prefix changes to every entry it owns
//   - skips names reserved for dedicated entities (the ignore list)
//   - renders deterministically, in insertion order, one element per line
//
// # Collections
//
// Two configurations cover the tag families seohelper emits:
//
//	meta.NewGeneric()                    // <meta name="robots" ...>, ignores description/keywords
//	meta.NewSocial("og:", meta.AttrProperty)  // <meta property="og:title" ...>
//	meta.NewSocial("twitter:", meta.AttrName) // <meta name="twitter:card" ...>
//
// Any other combination can be built with [NewCollection] and [Options].
//
// # Rendering
//
// Everything that produces markup implements [Renderable]:
//
//	c := meta.NewGeneric().Add("robots", "noindex")
//	fmt.Println(c.Render()) // <meta name="robots" content="noindex">
//
// Content is escaped for attribute context (&, ", <, >). Keys are not escaped;
// they come from configuration, not from page content.
//
// # Errors
//
// Collection operations never fail: empty names or contents are ignored.
// [New] is the only constructor that reports an error, an INVALID_INPUT
// [errors.Error], for direct callers that bypass a collection.
//
// # Concurrency
//
// Collections are not safe for concurrent mutation. They are meant to be
// built, rendered and dropped within a single request.
//
// [errors.Error]: github.com/matzehuels/seohelper/pkg/errors.Error
package meta
