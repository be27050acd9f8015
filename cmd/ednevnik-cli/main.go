package main

import (
	"context"

	"ednevnik/cmd/ednevnik-cli/commands"
	"ednevnik/lib/osutil"
)

func main() {
	ctx, stop := osutil.SignalContext(context.Background())
	defer stop()
	commands.ExecuteContext(ctx)
}
