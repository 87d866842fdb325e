// Package cfgm 提供通用的配置加载功能。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，YAML 与 JSON 共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 选项设置，最高优先级
//
// # 快速开始
//
// 定义配置结构体（json + desc 标签）：
//
//	type Config struct {
//	    Output    string `json:"output"     desc:"输出文件路径"`
//	    Append    bool   `json:"append"     desc:"追加模式"`
//	    BatchSize int64  `json:"batch-size" desc:"每批组合数"`
//	}
//
// 推荐使用 LoadCmd：
//
//	cfg, err := cfgm.LoadCmd(cmd, DefaultConfig(), "myapp",
//	    cfgm.WithEnvPrefix("MYAPP_"),
//	)
//
// # 环境变量(前缀)
//
// 通过 [WithEnvPrefix] 启用环境变量支持：
//   - 前缀 + 大写的配置 key
//   - 点号 (.) 和连字符 (-) 转为下划线 (_)
//
// # 变量展开
//
// 配置文件内容在解析前会进行环境变量展开（见 [envexp.Expand]）：
//
//	# config.yaml
//	expand:
//	  output: "${VARGEN_OUT:-vargen_result_text.txt}"
//
// 使用 [WithoutEnvExpansion] 可禁用该行为。
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"：
//   - expand.output → --expand-output
//   - expand.batch-size → --expand-batch-size
package cfgm
