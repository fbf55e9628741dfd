// Package domain contains the content entities the purge service reasons
// about (posts, terms, post types) and the ordered parameter bag used for
// AJAX purges. The types are free of storage and transport concerns.
package domain
