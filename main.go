package main

import "github.com/golangdaddy/outrider/cmd"

func main() {
	cmd.Execute()
}
