// Package vargen 把含备选组的模板展开为全部组合。
//
// 模板语法形如 "Hello [world|there]"：方括号内是以 '|'
// 分隔的备选项，每个备选组任选其一即得到一个输出。
// 组不支持嵌套（组内的 '[' 按字面处理），结构字符可用
// 反斜杠转义。
//
// # 枚举模型
//
// 解析得到的模板是不可变的片段序列；组合总数为各组
// 备选数之积。引擎不在内存中物化全部组合，而是把
// [0, total) 的组合索引做混合进制分解，按需解码出单个
// 字符串（见 [Template.At]），内存只与批次大小成正比。
//
// 枚举顺序确定且可复现：最后一个备选组变化最快，
// 类似里程表的最低位。
//
// # 并行与顺序
//
// [Template.Expand] 把索引区间切成连续批次，由有界的
// worker 并行渲染；无论批次完成顺序如何，结果都按
// 索引升序交给回调。首个错误会取消未开始的批次。
//
// # 快速开始
//
// 展开一个模板并写入文件：
//
//	tmpl, err := vargen.Parse("x[1|2]y[3|4]")
//	if err != nil {
//	    return err
//	}
//	sink, err := vargen.NewFileSink("out.txt", false, "\n")
//	if err != nil {
//	    return err
//	}
//	defer sink.Close()
//	err = tmpl.Expand(ctx, vargen.Options{}, sink.WriteBatch)
//
// 详见 [Parse]、[Template.Expand] 与 [Sink] 的文档。
package vargen
