/*

Package weft defines interfaces used throughout the gateway, such as: storage,
messages, handlers and block context. It also contains helpers to work with
conditions, addresses and time.
Look into this package to get an brief overview of design decisions made
around interfaces and extension building blocks.

*/

package weft
