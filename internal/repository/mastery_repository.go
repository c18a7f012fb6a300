package repository

import (
	"strings"
	"sync"

	"concept_tutor_backend/internal/model"
)

// MasteryRepository 按用户ID索引的进程内掌握度存储
//
// 用户ID是不透明字符串，首尾空白会被剔除，空串归一化为"default"。
// 记录在首次引用时惰性创建，存活至进程结束，不做跨进程持久化。
type MasteryRepository struct {
	mu    sync.Mutex
	users map[string]*model.UserMastery
}

func NewMasteryRepository() *MasteryRepository {
	return &MasteryRepository{users: make(map[string]*model.UserMastery)}
}

// NormalizeUserID 用户ID归一化规则
func NormalizeUserID(userID string) string {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return "default"
	}
	return uid
}

// Get 返回该用户的掌握度模型，不存在时创建带种子值的新记录
func (r *MasteryRepository) Get(userID string) *model.UserMastery {
	uid := NormalizeUserID(userID)

	r.mu.Lock()
	defer r.mu.Unlock()
	um, ok := r.users[uid]
	if !ok {
		um = model.NewUserMastery()
		r.users[uid] = um
	}
	return um
}

// Count 当前已跟踪的用户数
func (r *MasteryRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
