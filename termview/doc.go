// Package termview shows a textmode grid in a host terminal using tcell.
//
// Each grid cell maps to one terminal cell. The sixteen colours are sent as
// 24-bit RGB so they match the framebuffer renderer exactly on terminals
// that support true colour; tcell downgrades them elsewhere.
package termview
