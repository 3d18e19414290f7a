// Command fxctl is the operator CLI for the weekly rate ledger.
package main

func main() {
	Execute()
}
