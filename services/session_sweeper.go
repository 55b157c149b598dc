package services

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"globetrek/models"
	"globetrek/storage"

	"github.com/robfig/cron/v3"
)

// StartSessionSweeper запускает периодическую уборку просроченных сессий
// и записей черного списка. Это страховочный таймер: guard и так проверяет
// срок при каждом запросе, sweeper лишь не дает ключам копиться.
func StartSessionSweeper(store storage.Store) *cron.Cron {
	sweep := func() {
		if err := SweepSessions(context.Background(), store); err != nil {
			log.Printf("session sweep failed: %v", err)
		}
	}

	c := cron.New()
	c.AddFunc("@every 1m", sweep)
	c.Start()

	// Первый проход сразу при старте
	go sweep()

	return c
}

// SweepSessions удаляет просроченные сессии и протухшие записи blacklist
func SweepSessions(ctx context.Context, store storage.Store) error {
	now := time.Now().Unix()

	sessionKeys, err := store.Keys(ctx, storage.SessionKeyPrefix+"*")
	if err != nil {
		return err
	}
	for _, key := range sessionKeys {
		raw, ok, err := store.Get(ctx, key)
		if err != nil || !ok {
			continue
		}
		var session models.Session
		if err := json.Unmarshal([]byte(raw), &session); err != nil {
			// битую запись убираем тоже
			store.Del(ctx, key)
			continue
		}
		if session.ExpiresAt <= now {
			store.Del(ctx, key)
		}
	}

	blacklistKeys, err := store.Keys(ctx, storage.BlacklistKeyPrefix+"*")
	if err != nil {
		return err
	}
	for _, key := range blacklistKeys {
		raw, ok, err := store.Get(ctx, key)
		if err != nil || !ok {
			continue
		}
		exp, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || exp <= now {
			store.Del(ctx, key)
		}
	}

	return nil
}
