// Package io provides JSON import and export for rendered heads.
//
// # Overview
//
// A [Snapshot] captures everything a head renders, group by group, in render
// order. The format is designed for:
//
//   - Feeding tags to tools that do not speak HTML (crawlers, CMS imports)
//   - Serving tags from the preview server's /tags.json endpoint
//   - Round-trip preservation: export a head, re-import it, and render the
//     same markup again
//
// # JSON Format
//
//	{
//	  "groups": [
//	    {
//	      "name": "meta",
//	      "tags": [
//	        {"html": "<title>Home | Company</title>"},
//	        {"attribute": "name", "key": "description", "content": "Welcome"},
//	        {"html": "<link rel=\"canonical\" href=\"https://example.com/\">"}
//	      ]
//	    },
//	    {
//	      "name": "opengraph",
//	      "tags": [
//	        {"attribute": "property", "key": "og:title", "content": "Home"}
//	      ]
//	    }
//	  ]
//	}
//
// # Tag Fields
//
// A tag is either a verbatim fragment or a meta element:
//   - html: Rendered markup that is not a <meta> element (<title>, <link>)
//   - attribute: "name" or "property"
//   - key: The (prefixed, lowercased) meta key
//   - content: The raw, unescaped content; escaping happens on render
//
// Groups with no tags are omitted on export; disabled blocks therefore do
// not appear at all.
//
// # Import
//
// Use [ImportJSON] to read a snapshot from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	s, err := io.ImportJSON("tags.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.Render())
//
// Both functions validate every tag. Unknown fields are rejected.
//
// # Export
//
// Use [ExportJSON] to write a snapshot to a file, or [WriteJSON] to write to
// any io.Writer. HTML characters are not escaped in the JSON output, so
// fragments stay readable.
//
// # Concurrency
//
// A Snapshot is plain data. It is independent of the helper it was taken
// from and can be shared once no goroutine modifies it.
package io
