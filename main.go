package main

import "flowstate/cmd"

func main() {
	cmd.Execute()
}
