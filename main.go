package main

import "github.com/mtgjson/mtgjson-sub003/cmd"

func main() {
	cmd.Execute()
}
