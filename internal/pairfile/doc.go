// Package pairfile builds self-sustained pairs from text input: either
// [[pair]] entries in a TOML file or plain lines split by a [Rule].
//
// Each side of a split is passed through a named [Transform]. The built-in
// transforms are borrow, upper, lower and copy; borrow keeps a view into the
// pair's own buffer, the others produce owned text.
package pairfile
