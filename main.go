package main

import "github.com/theirongolddev/mrrgen/cmd"

func main() {
	cmd.Execute()
}
