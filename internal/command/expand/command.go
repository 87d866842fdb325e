// Package expand 提供模板展开命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-vargen/internal/command"
)

// Command 展开命令
var Command = &cli.Command{
	Name:   "expand",
	Usage:  "展开模板并写入输出文件",
	Action: action,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "expand-append",
			Aliases: []string{"a"},
			Value:   command.Defaults.Expand.Append,
			Usage:   "追加写入输出文件而非覆盖",
		},
		&cli.StringFlag{
			Name:    "expand-separator",
			Aliases: []string{"s"},
			Value:   command.Defaults.Expand.Separator,
			Usage:   "相邻组合之间的分隔符",
		},
		&cli.StringFlag{
			Name:    "expand-template",
			Aliases: []string{"t"},
			Value:   command.Defaults.Expand.Template,
			Usage:   "内联模板文本 (优先于输入文件)",
		},
		&cli.StringFlag{
			Name:    "expand-input",
			Aliases: []string{"i"},
			Value:   command.Defaults.Expand.Input,
			Usage:   "模板输入文件路径，每行一个模板",
		},
		&cli.StringFlag{
			Name:    "expand-output",
			Aliases: []string{"o"},
			Value:   command.Defaults.Expand.Output,
			Usage:   "结果输出文件路径，- 表示标准输出",
		},
		&cli.Int64Flag{
			Name:  "expand-batch-size",
			Value: command.Defaults.Expand.BatchSize,
			Usage: "每批组合数量",
		},
		&cli.IntFlag{
			Name:  "expand-workers",
			Value: command.Defaults.Expand.Workers,
			Usage: "并发批次上限 (0 = GOMAXPROCS)",
		},
		&cli.Int64Flag{
			Name:  "expand-max-total",
			Value: command.Defaults.Expand.MaxTotal,
			Usage: "单个模板组合总数上限",
		},
		&cli.BoolFlag{
			Name:  "expand-squeeze",
			Value: command.Defaults.Expand.Squeeze,
			Usage: "折叠连续空格并去除首尾空白",
		},
		&cli.BoolFlag{
			Name:  "expand-stats",
			Value: command.Defaults.Expand.Stats,
			Usage: "运行结束后输出统计信息",
		},
	},
}
