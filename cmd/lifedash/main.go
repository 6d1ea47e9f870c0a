package main

import (
	"context"

	"lifedash/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
