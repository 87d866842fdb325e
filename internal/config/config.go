// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - .vargen.yaml 等默认搜索路径
//  3. 环境变量 - VARGEN_ 前缀
//  4. CLI flags - 通过 cfgm.WithCommand 选项设置
package config

import "github.com/lwmacct/251207-go-pkg-vargen/pkg/vargen"

// Config 应用配置。
type Config struct {
	Expand ExpandConfig `json:"expand" desc:"展开配置"`
}

// ExpandConfig 模板展开配置。
type ExpandConfig struct {
	Append    bool   `json:"append" desc:"追加写入输出文件而非覆盖"`
	Separator string `json:"separator" desc:"相邻组合之间的分隔符"`
	Template  string `json:"template" desc:"内联模板文本 (优先于 input)"`
	Input     string `json:"input" desc:"模板输入文件路径，每行一个模板"`
	Output    string `json:"output" desc:"结果输出文件路径，- 表示标准输出"`
	BatchSize int64  `json:"batch-size" desc:"每批组合数量"`
	Workers   int    `json:"workers" desc:"并发批次上限 (0 = GOMAXPROCS)"`
	MaxTotal  int64  `json:"max-total" desc:"单个模板组合总数上限"`
	Squeeze   bool   `json:"squeeze" desc:"折叠连续空格并去除首尾空白"`
	Stats     bool   `json:"stats" desc:"运行结束后输出统计信息"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Expand: ExpandConfig{
			Separator: "\n",
			Input:     "vargen_source_text.txt",
			Output:    "vargen_result_text.txt",
			BatchSize: vargen.DefaultBatchSize,
			MaxTotal:  vargen.DefaultMaxTotal,
		},
	}
}
