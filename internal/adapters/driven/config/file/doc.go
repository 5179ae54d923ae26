// Package file stores recap's settings in a TOML file, by default
// ~/.recap/config.toml. Dotted keys such as "archive.base_url" map to
// TOML tables:
//
//	[archive]
//	base_url = "https://www.courtlistener.com/api/rest/v4"
//	rate_per_second = 2.0
package file
