/*
Package errors implements the error handling used across the application.

Every error returned to the client should wrap one of the root errors
registered with Register. A root error carries an ABCI code, which allows the
client to distinguish kinds of failures. Reuse errors declared in this package
where possible and register a package specific error only when none fits.

Create errors using ErrXyz.New("...") or Wrap(err, "...") at the point of
failure, so that a stack trace is attached. Only the innermost wrap records
the stack trace.

Once you have an error, use fmt to print it:

	%s is the error message
	%+v is the message followed by the stack trace

Use ErrXyz.Is(err) to test the kind of an error.
*/
package errors
