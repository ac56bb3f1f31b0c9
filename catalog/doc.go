// Package catalog maps database names to directories under a root.
//
// The layout is <root>/<database>/<table>.txt. Creating a database makes its
// directory; dropping it removes the directory and every table file in it.
package catalog
