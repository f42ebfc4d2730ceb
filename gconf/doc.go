/*
Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Each extension keeps its configuration under the `_c:<pkg>` key. The
configuration is loaded from the genesis file and can later be changed by a
message signed by the configuration owner.
*/
package gconf
