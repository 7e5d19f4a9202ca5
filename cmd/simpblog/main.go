package main

import (
	"github.com/alecthomas/kong"

	"github.com/alexk49/simpblog/cmd/simpblog/commands"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("simpblog"),
		kong.Description("Simple static site generator: markdown in, HTML site out."),
		kong.UsageOnError(),
	)

	err := ctx.Run(&commands.Global{}, &cli)
	ctx.FatalIfErrorf(err)
}
