// Package format names the concrete document formats the conversion system
// moves between. Transform contexts carry a Format so a transformer can
// behave differently depending on the conversion target.
package format
