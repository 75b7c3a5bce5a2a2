/*
Package x contains the extensions of the gateway host.

Extensions implement common functionality (Handler, Decorator,
Initializer) and are combined together in cmd/gatewayd to construct
the application. x/gateway holds the gateway itself, x/auth binds the
caller conditions of a transaction to the context and x/utils provides
the logging, recovery and savepoint decorators.

Authenticator is declared here so that handlers can be constructed with
any authentication source, not only x/auth.
*/
package x
