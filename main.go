package main

import "github.com/notargets/spectral/cmd"

func main() {
	cmd.Execute()
}
