package main

import (
	"github.com/alecthomas/kong"

	"jordan.com/BeerStore/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("BeerStore"), kong.Description("BeerStore registers beers, one per name and type."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
