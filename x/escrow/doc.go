/*
Package escrow implements a multi party escrow.

The payer locks an amount in an escrow that names a payee and an arbiter.
The funds stay in the escrow account until enough of the three parties
approve one of two outcomes:

	release: the amount is paid to the payee, not before ReleaseAfter
	refund:  the amount is returned to the payer

Votes for the release and for the refund are counted separately and both
must reach RequiredApprovals. Whichever outcome reaches the quorum first
ends the escrow and no further votes are accepted.
*/
package escrow
