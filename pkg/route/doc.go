// Package route defines the route tree consumed and produced by the
// localizer, and helpers to load, scan, walk and flatten it.
package route
