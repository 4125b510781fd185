package main

import "github.com/robalobadob/wordwonder/cmd"

func main() {
	cmd.Execute()
}
