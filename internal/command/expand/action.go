package expand

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-vargen/internal/command"
	"github.com/lwmacct/251207-go-pkg-vargen/internal/config"
	"github.com/lwmacct/251207-go-pkg-vargen/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-vargen/pkg/vargen"
)

func action(ctx context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg := cfgm.MustLoadCmd(cmd, config.DefaultConfig(), command.AppName,
		cfgm.WithEnvPrefix(command.EnvPrefix),
	)

	return run(ctx, &cfg.Expand)
}

// run 执行一次完整的展开：解析 → 校验规模 → 生成 → 写出。
//
// 解析与规模校验在打开输出之前完成，任何前置错误都不会
// 动到输出文件（覆盖模式下尤其不能提前截断）。
func run(ctx context.Context, cfg *config.ExpandConfig) error {
	start := time.Now()

	if cfg.BatchSize < 0 || cfg.Workers < 0 || cfg.MaxTotal < 0 {
		return fmt.Errorf("%w: batch-size, workers and max-total must be non-negative", vargen.ErrInvalidConfig)
	}

	texts, err := loadTemplates(cfg)
	if err != nil {
		return err
	}

	templates := make([]*vargen.Template, 0, len(texts))
	for _, text := range texts {
		tmpl, err := vargen.Parse(text)
		if err != nil {
			return err
		}
		if _, err := tmpl.Count(cfg.MaxTotal); err != nil {
			return err
		}
		templates = append(templates, tmpl)
	}

	sink, err := openSink(cfg)
	if err != nil {
		return err
	}

	opts := vargen.Options{
		BatchSize: cfg.BatchSize,
		Workers:   cfg.Workers,
		MaxTotal:  cfg.MaxTotal,
	}

	var combinations, batches int64
	for _, tmpl := range templates {
		err := tmpl.Expand(ctx, opts, func(lines []string) error {
			if cfg.Squeeze {
				for i := range lines {
					lines[i] = vargen.Squeeze(lines[i])
				}
			}
			combinations += int64(len(lines))
			batches++

			return sink.WriteBatch(lines)
		})
		if err != nil {
			_ = sink.Close()

			return err
		}
	}

	if err := sink.Close(); err != nil {
		return err
	}

	if cfg.Stats {
		slog.Info("Expansion finished",
			"templates", len(templates),
			"combinations", combinations,
			"batches", batches,
			"elapsed", time.Since(start).Round(time.Microsecond),
		)
	}

	return nil
}

// loadTemplates 返回本次要展开的模板列表。
//
// 内联模板优先；否则读取输入文件，每个非空行一个模板，
// 按行序展开。
func loadTemplates(cfg *config.ExpandConfig) ([]string, error) {
	if cfg.Template != "" {
		return []string{cfg.Template}, nil
	}

	content, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", cfg.Input, err)
	}

	var out []string
	for line := range strings.Lines(string(content)) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		out = append(out, line)
	}

	return out, nil
}

func openSink(cfg *config.ExpandConfig) (*vargen.Sink, error) {
	if cfg.Output == "-" {
		return vargen.NewWriterSink(os.Stdout, cfg.Separator), nil
	}

	return vargen.NewFileSink(cfg.Output, cfg.Append, cfg.Separator)
}
