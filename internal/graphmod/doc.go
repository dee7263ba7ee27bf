// Package graphmod is the host side of the graph-editor module contract.
//
// A module is opaque to the shell. It is obtained from a Loader, initialized
// once, then started against a canvas that the host placed in a Document.
// The Bootstrap type sequences those calls for one mount of the graph tab.
package graphmod
