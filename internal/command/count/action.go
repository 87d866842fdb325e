package count

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-vargen/internal/command"
	"github.com/lwmacct/251207-go-pkg-vargen/internal/config"
	"github.com/lwmacct/251207-go-pkg-vargen/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-vargen/pkg/vargen"
)

func action(ctx context.Context, cmd *cli.Command) error {
	cfg := cfgm.MustLoadCmd(cmd, config.DefaultConfig(), command.AppName,
		cfgm.WithEnvPrefix(command.EnvPrefix),
	)

	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}

	return run(&cfg.Expand, w)
}

// run 报告每个模板的组合空间形状与总数。
//
// 与展开命令共用同一上限校验，便于在真正生成前预估规模。
func run(cfg *config.ExpandConfig, w io.Writer) error {
	texts, err := loadTemplates(cfg)
	if err != nil {
		return err
	}

	var grand int64
	for i, text := range texts {
		tmpl, err := vargen.Parse(text)
		if err != nil {
			return fmt.Errorf("template %d: %w", i+1, err)
		}

		total, err := tmpl.Count(cfg.MaxTotal)
		if err != nil {
			return fmt.Errorf("template %d: %w", i+1, err)
		}

		fmt.Fprintf(w, "template %d: shape=%v total=%d\n", i+1, tmpl.Shape(), total)
		grand += total
	}
	fmt.Fprintf(w, "templates=%d combinations=%d\n", len(texts), grand)

	return nil
}

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
