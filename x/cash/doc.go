/*
Package cash holds the balances of all accounts.

Each address owns a wallet, a set of coins of distinct currencies. The
Controller moves coins between wallets and is the asset transfer used by the
escrow extension to lock and pay out funds. SendMsg lets an account owner
transfer coins directly.
*/
package cash
