package main

import "release-manager/cmd"

func main() {
	cmd.Execute()
}
