// Package channels packs RC channel values into the 11-bit wire format and
// converts them between protocol units and pulse width microseconds.
package channels

// Protocol units are the native 11-bit channel domain (0..1984, center 992).
// Microseconds are the familiar servo pulse width domain (~988..2012, center
// 1500). The two domains are related by an affine map except at the center
// value, which always maps exactly.
