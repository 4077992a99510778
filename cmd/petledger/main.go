// Package main runs the pet ledger server and its maintenance commands.
package main

import "github.com/go-petr/pet-ledger/cmd/petledger/commands"

func main() {
	commands.Execute()
}
