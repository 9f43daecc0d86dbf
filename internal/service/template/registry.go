// Package template 提供问答模板注册表与 QA 对构建
package template

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/KingTechnician/MHWorldData/internal/model"
	"github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
	"github.com/spf13/cast"
)

var (
	// ErrUnknownTemplate 模板不存在
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrMissingField 格式字典缺少模板占位符
	ErrMissingField = errors.New("missing field")
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// MissingFieldError 缺少占位符对应的字段
type MissingFieldError struct {
	Template string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("template %s: missing field %q", e.Template, e.Field)
}

// Unwrap 支持 errors.Is(err, ErrMissingField)
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// Template 问答模板：system 提示词 + 问题模式 + 答案模式
type Template struct {
	Name         string
	System       string
	Question     string
	Answer       string
	Placeholders []string // 问题与答案中引用的占位符，按首次出现排序

	chat prompt.ChatTemplate
}

// Registry 只读模板注册表
type Registry struct {
	templates map[string]*Template
	handlers  []callbacks.Handler
}

// NewRegistry 创建内置模板注册表，handlers 接收每次模板填充的回调
func NewRegistry(handlers ...callbacks.Handler) *Registry {
	r := &Registry{
		templates: make(map[string]*Template, len(definitions)),
		handlers:  handlers,
	}
	for _, def := range definitions {
		t := def
		t.Placeholders = placeholders(t.System, t.Question, t.Answer)
		t.chat = prompt.FromMessages(schema.FString,
			schema.SystemMessage(t.System),
			schema.UserMessage(t.Question),
			schema.AssistantMessage(t.Answer, nil),
		)
		r.templates[t.Name] = &t
	}
	return r
}

// Get 获取模板
func (r *Registry) Get(name string) (*Template, bool) {
	t, ok := r.templates[name]
	return t, ok
}

// Names 返回全部模板名（排序）
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build 用格式字典填充模板，生成一个 QA 对。
// 字典必须包含模板引用的全部占位符，且值可以转换为文本
func (r *Registry) Build(ctx context.Context, name string, values map[string]any) (model.QAPair, error) {
	t, ok := r.templates[name]
	if !ok {
		return model.QAPair{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}

	vs := make(map[string]any, len(t.Placeholders))
	for _, field := range t.Placeholders {
		v, ok := values[field]
		if !ok {
			return model.QAPair{}, &MissingFieldError{Template: name, Field: field}
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return model.QAPair{}, fmt.Errorf("template %s: field %q: %w", name, field, err)
		}
		vs[field] = s
	}

	if len(r.handlers) > 0 {
		ctx = callbacks.InitCallbacks(ctx, &callbacks.RunInfo{
			Name:      name,
			Type:      "FString",
			Component: components.ComponentOfPrompt,
		}, r.handlers...)
	}
	msgs, err := t.chat.Format(ctx, vs)
	if err != nil {
		return model.QAPair{}, fmt.Errorf("failed to format template %s: %w", name, err)
	}
	if len(msgs) != 3 {
		return model.QAPair{}, fmt.Errorf("template %s produced %d messages, want 3", name, len(msgs))
	}

	pair := model.QAPair{Messages: make([]model.Message, 0, len(msgs))}
	for _, m := range msgs {
		pair.Messages = append(pair.Messages, model.Message{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return pair, nil
}

// placeholders 提取占位符名，去重并保持首次出现顺序
func placeholders(patterns ...string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range patterns {
		for _, m := range placeholderPattern.FindAllStringSubmatch(p, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				names = append(names, m[1])
			}
		}
	}
	return names
}
