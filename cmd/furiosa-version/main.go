package main

import "github.com/furiosa-ai/furiosa-version/cmd/furiosa-version/cmd"

func main() {
	cmd.Execute()
}
