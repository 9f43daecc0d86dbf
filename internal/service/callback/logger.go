// Package callback 提供 Eino Callback 日志支持，记录问答模板的填充过程
package callback

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// Logger 模板填充回调处理器
// 实现 callbacks.Handler 接口，统计成功与失败的填充次数
type Logger struct {
	EnableDebug bool // 是否逐条记录模板填充

	formatted atomic.Int64
	failed    atomic.Int64
}

// NewLogger 创建日志回调处理器
func NewLogger(enableDebug bool) *Logger {
	return &Logger{EnableDebug: enableDebug}
}

// OnStart 模板填充开始时调用
func (l *Logger) OnStart(ctx context.Context, info *callbacks.RunInfo, input callbacks.CallbackInput) context.Context {
	if l.EnableDebug {
		vars := 0
		if in := prompt.ConvCallbackInput(input); in != nil {
			vars = len(in.Variables)
		}
		log.Printf("[Template] OnStart: name=%s component=%s variables=%d", info.Name, info.Component, vars)
	}
	return ctx
}

// OnEnd 模板填充成功时调用
func (l *Logger) OnEnd(ctx context.Context, info *callbacks.RunInfo, output callbacks.CallbackOutput) context.Context {
	l.formatted.Add(1)
	if l.EnableDebug {
		if out := prompt.ConvCallbackOutput(output); out != nil {
			log.Printf("[Template] OnEnd: name=%s question=%s", info.Name, truncate(question(out.Result), 200))
		}
	}
	return ctx
}

// OnError 模板填充出错时调用
func (l *Logger) OnError(ctx context.Context, info *callbacks.RunInfo, err error) context.Context {
	l.failed.Add(1)
	log.Printf("[Template] Error: name=%s component=%s error=%v", info.Name, info.Component, err)
	return ctx
}

// OnStartWithStreamInput 模板填充不使用流式输入
func (l *Logger) OnStartWithStreamInput(ctx context.Context, info *callbacks.RunInfo, input *schema.StreamReader[callbacks.CallbackInput]) context.Context {
	input.Close()
	return ctx
}

// OnEndWithStreamOutput 模板填充不使用流式输出
func (l *Logger) OnEndWithStreamOutput(ctx context.Context, info *callbacks.RunInfo, output *schema.StreamReader[callbacks.CallbackOutput]) context.Context {
	output.Close()
	return ctx
}

// Formatted 成功填充次数
func (l *Logger) Formatted() int64 {
	return l.formatted.Load()
}

// Failed 失败次数
func (l *Logger) Failed() int64 {
	return l.failed.Load()
}

func question(msgs []*schema.Message) string {
	for _, m := range msgs {
		if m.Role == schema.User {
			return m.Content
		}
	}
	return ""
}

// truncate 截断到 n 个字符（按 rune 计）
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n]) + "..."
	}
	return s
}
