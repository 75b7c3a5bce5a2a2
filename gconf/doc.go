/*

Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension stores a single configuration object under its own singleton
key. The configuration can be initialized from the genesis options and is
validated every time it is written.

*/
package gconf
