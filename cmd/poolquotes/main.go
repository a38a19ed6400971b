package main

import (
	"context"

	"poolquotes/cmd/poolquotes/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
