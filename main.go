package main

import "github.com/notargets/rbfspline/cmd"

func main() {
	cmd.Execute()
}
