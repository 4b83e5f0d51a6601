package main

import "luamin/cmd"

func main() {
	cmd.Execute()
}
