package cfgm

import "github.com/urfave/cli/v3"

// options 配置加载选项。
type options struct {
	appName        string // 应用名称，用于生成默认配置路径
	cmd            *cli.Command
	configPaths    []string
	envPrefix      string
	noEnvExpansion bool // 是否禁用配置文件变量展开（默认启用）
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，读取显式设置的 flags 以覆盖配置（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 设置配置文件搜索路径。
//
// 按顺序查找，命中首个文件即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithEnvPrefix 启用环境变量前缀解析。
//
// 环境变量命名规则：
//   - 前缀 + 大写的配置 key
//   - 点号 (.) 和连字符 (-) 转为下划线 (_)
//
// 示例 (前缀为 "VARGEN_")：
//   - VARGEN_EXPAND_APPEND → expand.append
//   - VARGEN_EXPAND_BATCH_SIZE → expand.batch-size
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutEnvExpansion 禁用配置文件的变量展开。
//
// 默认会执行 ${VAR:-default} 这类展开（见 [envexp.Expand]）。
// 该选项会保留原始 ${...} 字符串。
func WithoutEnvExpansion() Option {
	return func(o *options) {
		o.noEnvExpansion = true
	}
}
