package main

import "momentum/cmd/mmt/root"

func main() {
	root.Execute()
}
