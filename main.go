/*
Copyright © 2025 The jarcraft authors
*/
package main

import "github.com/jarcraft/jarcraft/cmd"

func main() {
	cmd.Execute()
}
