package main

import (
	"context"
	"nlrbdata/cmd/nlrb-cli/commands"
	"nlrbdata/lib/serviceutil"
)

func main() {
	ctx, cancel := serviceutil.SignalContext(context.Background())
	defer cancel()
	commands.ExecuteContext(ctx)
}
