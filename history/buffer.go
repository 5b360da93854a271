package history

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity 默认保留最近 7 条记录
const DefaultCapacity = 7

// DateLayout 记录日期格式
const DateLayout = "2006-01-02"

// Entry 一次分析的历史记录
type Entry struct {
	ID             string         `json:"id"`
	Date           string         `json:"date" example:"2024-01-15"`
	Score          int            `json:"score"`
	Percentages    map[string]int `json:"percentages"`
	WorkoutMinutes int            `json:"workout_minutes"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewEntry 以当前时间生成一条记录
func NewEntry(now time.Time, score int, percentages map[string]int, workoutMinutes int) Entry {
	pct := make(map[string]int, len(percentages))
	for k, v := range percentages {
		pct[k] = v
	}
	return Entry{
		ID:             uuid.NewString(),
		Date:           now.Format(DateLayout),
		Score:          score,
		Percentages:    pct,
		WorkoutMinutes: workoutMinutes,
		CreatedAt:      now,
	}
}

// Buffer 容量有限的只追加记录，超出容量时淘汰最早的一条
// 不按日期去重，同一天的多次分析都会保留
type Buffer struct {
	capacity int
	entries  []Entry
}

// NewBuffer 创建缓冲区，capacity <= 0 时使用默认容量
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity, entries: make([]Entry, 0, capacity)}
}

// Push 追加一条记录
func (b *Buffer) Push(e Entry) {
	if len(b.entries) == b.capacity {
		copy(b.entries, b.entries[1:])
		b.entries = b.entries[:len(b.entries)-1]
	}
	b.entries = append(b.entries, e)
}

// Entries 按时间先后返回记录副本
func (b *Buffer) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len 当前记录数
func (b *Buffer) Len() int { return len(b.entries) }

// Capacity 最大记录数
func (b *Buffer) Capacity() int { return b.capacity }
