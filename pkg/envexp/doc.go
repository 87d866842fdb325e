// Package envexp 提供配置字符串的环境变量展开。
//
// 该包仅处理 ${...} 语法，适合在 YAML/JSON 等配置文件中做轻量替换。
// 不执行命令、不引入模板引擎，强调可读性与可预测性。
//
// # 语义说明
//
//  1. 仅做字符串层面的替换（不解析 $VAR）
//  2. 支持嵌套默认值与 "$$" 字面量
//  3. 无法识别的表达式保持原样
//
// # 快速开始
//
// 展开配置文件中的环境变量引用：
//
//	content := `output: "${VARGEN_OUTPUT:-vargen_result_text.txt}"`
//	expanded, err := envexp.Expand(content)
//
// 详见 [Expand] 文档。
package envexp
