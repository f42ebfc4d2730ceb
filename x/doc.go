/*
Package x contains helpers shared by the extensions.

Each extension lives in its own subpackage and implements one piece of the
application: cash holds balances, sigs verifies signatures and escrow holds
funds until a quorum of parties agrees on their outcome.
*/
package x
