package main

import "github.com/ngld/quickshot/tools/cmd"

func main() {
	cmd.Execute()
}
