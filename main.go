package main

import "nathanbeddoewebdev/padron/cmd"

func main() {
	cmd.Execute()
}
