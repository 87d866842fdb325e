// Package count 提供组合计数命令。
package count

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-vargen/internal/command"
)

// Command 计数命令：只解析并报告组合空间，不生成任何输出。
var Command = &cli.Command{
	Name:   "count",
	Usage:  "统计模板的组合空间，不做展开",
	Action: action,
	Flags: []cli.Flag{
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
		&cli.Int64Flag{
			Name:  "expand-max-total",
			Value: command.Defaults.Expand.MaxTotal,
			Usage: "单个模板组合总数上限",
		},
	},
}
