/*
Package weave defines the common interfaces used to weave together the
escrow application: stores, transactions, messages, handlers and
decorators. It also provides implementations of the simpler building
blocks, such as addresses, conditions and time, where an interface would be
too much overhead.

Block related information travels in context.Context between the
application, decorators and handlers. For every value of type T that is
supported in the context there are two functions:

  WithXYZ(context.Context, T) context.Context
  GetXYZ(context.Context) (val T, ok bool)

WithXYZ panics if the value was already set, so that lower level code cannot
overwrite what the application declared (eg. height or chain ID).
*/
package weave
