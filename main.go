package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-vargen/internal/command"
	"github.com/lwmacct/251207-go-pkg-vargen/internal/command/count"
	"github.com/lwmacct/251207-go-pkg-vargen/internal/command/expand"
)

// version 构建时通过 -ldflags "-X main.version=..." 注入。
var version = "dev"

func main() {
	app := &cli.Command{
		Name:    command.AppName,
		Usage:   "组合模板展开工具",
		Version: version,
		Commands: []*cli.Command{
			expand.Command,
			count.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
