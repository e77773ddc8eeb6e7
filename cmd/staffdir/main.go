// Package main provides the CLI entry point for staffdir.
package main

import "github.com/okubo/staffdir-go/cmd/staffdir/cmd"

func main() {
	cmd.Execute()
}
