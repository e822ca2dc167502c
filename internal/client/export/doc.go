// Package export projects the journal into a folder-per-day Markdown
// representation.
//
// Project groups entries by the calendar day of their id (a Unix-ms
// creation time), orders the days chronologically, and renders one
// Markdown document per day. Ids are handed out in increasing order, so for
// a log built by the journal this is also the order in which days are first
// encountered; the sort only matters for entries whose ids were not issued
// by the journal's id generator.
//
// A day looks like this:
//
//	# 2024-03-01
//
//	## 09:12 Me
//
//	Entry text
//
//	![image](image-1.png)
//
//	### 09:15
//
//	Reply text
//
// In ModeArchive images are decoded from their data URIs into separate
// files (image-1.png, image-2.jpeg, ...) referenced by relative name; in
// ModeInline the data URI is embedded unchanged. An image whose data URI
// cannot be decoded is left out of the archive output without affecting
// the rest of the document.
//
// Nothing in this package mutates its input.
package export
