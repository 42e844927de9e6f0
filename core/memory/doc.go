// Package memory models recorded conversation turns and the sliding-window
// buffer that holds them. A [Memory] is one turn, a [ResponseMem] is an
// assistant turn that may carry tool calls and their results, and a [History]
// is a bounded FIFO buffer of turns used to build prompt context.
package memory
