// Command synaptic is a small terminal front end for the library: an
// interactive chat REPL plus introspection helpers, configured entirely from
// the environment.
package main

func main() {
	Execute()
}
