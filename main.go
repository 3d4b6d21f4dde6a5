package main

import "github.com/Tiliavir/dietbook/cmd"

func main() {
	cmd.Execute()
}
