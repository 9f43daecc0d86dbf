package model

import (
	"time"
)

// 消息角色
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Dataset 数据集生成记录
type Dataset struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Source         string         `json:"source"` // 源数据目录
	RecordCount    int            `json:"record_count"`
	TrainCount     int            `json:"train_count"`
	ValCount       int            `json:"val_count"`
	TrainPath      string         `json:"train_path"`
	ValPath        string         `json:"val_path"`
	TemplateCounts map[string]int `json:"template_counts"` // 模板名 -> QA 对数量
	DomainCounts   map[string]int `json:"domain_counts"`   // 领域 -> 行数
	CreatedAt      time.Time      `json:"created_at"`
}

// Message 对话消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// QAPair QA 对（system / user / assistant 三轮对话）
type QAPair struct {
	Messages []Message `json:"messages"`
}

// Question 返回 user 消息内容
func (p QAPair) Question() string {
	return p.content(RoleUser)
}

// Answer 返回 assistant 消息内容
func (p QAPair) Answer() string {
	return p.content(RoleAssistant)
}

// System 返回 system 消息内容
func (p QAPair) System() string {
	return p.content(RoleSystem)
}

func (p QAPair) content(role string) string {
	for _, m := range p.Messages {
		if m.Role == role {
			return m.Content
		}
	}
	return ""
}
