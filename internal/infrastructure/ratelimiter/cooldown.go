package ratelimiter

import (
	"sync"
	"time"
)

const cooldownKeyPrefix = "rl:cooldown:"

// DefaultChatCooldown is the minimum gap between two accepted chat-class
// payloads from the same user.
const DefaultChatCooldown = 2 * time.Second

// CooldownGate is the per-user gate for chat and emoji traffic. A call is
// accepted only if at least the cooldown has elapsed since the user's last
// accepted call; rejected calls do not touch the stored timestamp.
type CooldownGate struct {
	cooldown time.Duration
	cache    GetterSetter
	locks    sync.Map // map[string]*sync.Mutex
	now      func() time.Time
}

func NewCooldownGate(cooldown time.Duration, cache GetterSetter) *CooldownGate {
	if cooldown <= 0 {
		cooldown = DefaultChatCooldown
	}

	if cache == nil {
		cache = NewInMemory()
	}

	return &CooldownGate{
		cooldown: cooldown,
		cache:    cache,
		now:      time.Now,
	}
}

func (g *CooldownGate) getLock(userID string) *sync.Mutex {
	lock, _ := g.locks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Allow reports whether a chat-class payload from userID may pass. On
// acceptance the current time is recorded as the user's last accepted call.
func (g *CooldownGate) Allow(userID string) bool {
	lock := g.getLock(userID)
	lock.Lock()
	defer lock.Unlock()

	now := g.now().UnixMilli()

	last, err := g.cache.Get(cooldownKeyPrefix + userID)
	if err == nil && now-last < g.cooldown.Milliseconds() {
		return false
	}

	_ = g.cache.Set(cooldownKeyPrefix+userID, now)
	return true
}

func (g *CooldownGate) Cooldown() time.Duration {
	return g.cooldown
}
