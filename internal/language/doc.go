// Package language validates and normalizes the BCP 47 language codes that
// projects and videos carry, and holds the catalog of languages offered to
// clients.
package language
