// Package signature renders declared type signatures as the short, readable
// names used in generated text.
//
// Two input forms are accepted. Encoded signatures as produced by Java-style
// type models ("I", "QString;", "Ljava.util.List<Ljava.lang.String;>;",
// "[Z") are decoded. Anything that does not parse as an encoded signature is
// treated as source text ("time.Time", "[]pkg.Item") and only has its
// package qualifiers dropped.
package signature
