/*
Package app contains the glue between the escrow extensions and the ABCI
interface of tendermint.

StoreApp owns the merkle store, the genesis initialization and the queries.
BaseApp adds CheckTx and DeliverTx on top of it, dispatching decoded
transactions to a handler that is usually a Router wrapped in a chain of
decorators.
*/
package app
