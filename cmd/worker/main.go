package main

import "bitbucket.org/adsa/go-reservation-ledger/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
