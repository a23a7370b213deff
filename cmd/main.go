package main

import (
	"context"

	"github.com/embermark/flatbuffers/internal/cmd"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), cmd.Root())
}
