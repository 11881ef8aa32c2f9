package main

import "github.com/Kuly14/ethereum-private-key-to-address/internal/cmd"

func main() {
	cmd.Execute()
}
