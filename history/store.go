package history

import (
	"sync"
	"time"
)

const (
	// DefaultMaxSessions 同时保留历史的会话上限
	DefaultMaxSessions = 10000
	// DefaultIdleTTL 会话最后一次写入后保留的时长，与会话 Cookie 有效期一致
	DefaultIdleTTL = 7 * 24 * time.Hour
)

type session struct {
	buf      *Buffer
	lastSeen time.Time
}

// StoreOption 历史存储可选配置
type StoreOption func(*Store)

// WithMaxSessions 会话数上限，超过时淘汰最久未写入的会话
func WithMaxSessions(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithIdleTTL 空闲会话过期时长
func WithIdleTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		if ttl > 0 {
			s.idleTTL = ttl
		}
	}
}

// Store 按会话隔离的历史记录，写操作串行化
type Store struct {
	mu          sync.RWMutex
	capacity    int
	maxSessions int
	idleTTL     time.Duration
	now         func() time.Time
	sessions    map[string]*session
}

// NewStore 创建历史存储
func NewStore(capacity int, opts ...StoreOption) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &Store{
		capacity:    capacity,
		maxSessions: DefaultMaxSessions,
		idleTTL:     DefaultIdleTTL,
		now:         time.Now,
		sessions:    make(map[string]*session),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Append 向会话追加记录，返回追加后的记录数
func (s *Store) Append(key string, e Entry) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	sess, ok := s.sessions[key]
	if !ok {
		if len(s.sessions) >= s.maxSessions {
			s.evictOldestLocked()
		}
		sess = &session{buf: NewBuffer(s.capacity)}
		s.sessions[key] = sess
	}
	sess.buf.Push(e)
	sess.lastSeen = now
	return sess.buf.Len()
}

// evictOldestLocked 淘汰最久未写入的会话，调用方需持有写锁
func (s *Store) evictOldestLocked() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for k, sess := range s.sessions {
		if !found || sess.lastSeen.Before(oldest) {
			oldestKey, oldest, found = k, sess.lastSeen, true
		}
	}
	if found {
		delete(s.sessions, oldestKey)
	}
}

// Entries 返回会话记录副本，没有记录时返回空切片
func (s *Store) Entries(key string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[key]
	if !ok {
		return []Entry{}
	}
	return sess.buf.Entries()
}

// Clear 清空会话记录
func (s *Store) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}

// Merge 把 from 会话的记录按时间顺序追加到 to 会话并删除 from，返回 to 的记录数
// 匿名用户登录后用它把之前的分析并入账号历史
func (s *Store) Merge(from, to string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.sessions[from]
	dst, exists := s.sessions[to]
	if !ok || from == to {
		if !exists {
			return 0
		}
		return dst.buf.Len()
	}
	delete(s.sessions, from)
	if !exists {
		dst = &session{buf: NewBuffer(s.capacity)}
		s.sessions[to] = dst
	}
	for _, e := range src.buf.Entries() {
		dst.buf.Push(e)
	}
	dst.lastSeen = s.now()
	return dst.buf.Len()
}

// Sessions 当前持有记录的会话数
func (s *Store) Sessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep 删除超过空闲时长未写入的会话，返回删除数量
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.idleTTL)
	removed := 0
	for k, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, k)
			removed++
		}
	}
	return removed
}

// StartSweeper 后台定期清理空闲会话，返回停止函数
func (s *Store) StartSweeper(interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = time.Minute
	}
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// Trend 趋势视图数据
type Trend struct {
	Empty          bool             `json:"empty"`
	Placeholder    string           `json:"placeholder,omitempty"`
	Dates          []string         `json:"dates"`
	Scores         []int            `json:"scores"`
	WorkoutMinutes []int            `json:"workout_minutes"`
	Categories     map[string][]int `json:"categories"`
}

// EmptyTrendPlaceholder 没有历史时的提示
const EmptyTrendPlaceholder = "No history yet. Run an analysis to start your weekly trend."

// Trend 把会话记录整理为按时间排列的序列
func (s *Store) Trend(key string) Trend {
	return BuildTrend(s.Entries(key))
}

// BuildTrend 由记录生成趋势序列；某条记录缺少的类别以 0 补齐
func BuildTrend(entries []Entry) Trend {
	t := Trend{
		Dates:          make([]string, 0, len(entries)),
		Scores:         make([]int, 0, len(entries)),
		WorkoutMinutes: make([]int, 0, len(entries)),
		Categories:     map[string][]int{},
	}
	if len(entries) == 0 {
		t.Empty = true
		t.Placeholder = EmptyTrendPlaceholder
		return t
	}

	for _, e := range entries {
		for cat := range e.Percentages {
			if _, ok := t.Categories[cat]; !ok {
				t.Categories[cat] = make([]int, 0, len(entries))
			}
		}
	}
	for _, e := range entries {
		t.Dates = append(t.Dates, e.Date)
		t.Scores = append(t.Scores, e.Score)
		t.WorkoutMinutes = append(t.WorkoutMinutes, e.WorkoutMinutes)
		for cat := range t.Categories {
			t.Categories[cat] = append(t.Categories[cat], e.Percentages[cat])
		}
	}
	return t
}
