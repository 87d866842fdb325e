// Package command 提供模板展开与组合计数的命令行功能。
package command

import "github.com/lwmacct/251207-go-pkg-vargen/internal/config"

// AppName 应用名称，用于配置搜索路径与环境变量前缀。
const AppName = "vargen"

// EnvPrefix 环境变量前缀。
const EnvPrefix = "VARGEN_"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
