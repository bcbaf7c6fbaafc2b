package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"disha/internal/registration"
	"disha/pkg/platform/sentinel"
	"disha/pkg/requestcontext"
)

const pendingKeyPrefix = "pending:phone:"

// RedisStore is a Redis-backed PendingStore for deployments that prefer the
// pending window to survive a process restart. Records live in hashes with a
// TTL matching the OTP expiry, so Redis itself removes abandoned entries and
// DeleteExpired has nothing to do.
//
// Per-key atomicity comes from Lua scripts: increment-if-exists and
// get-and-delete each execute as a single Redis command.
type RedisStore struct {
	client redis.Cmdable
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

var attemptScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return nil
end
redis.call("HINCRBY", KEYS[1], "attempts", 1)
return redis.call("HGETALL", KEYS[1])
`)

var removeScript = redis.NewScript(`
local rec = redis.call("HGETALL", KEYS[1])
if #rec == 0 then
	return nil
end
redis.call("DEL", KEYS[1])
return rec
`)

func (s *RedisStore) Create(ctx context.Context, rec registration.PendingRegistration) (*registration.PendingRegistration, error) {
	key := pendingKeyPrefix + rec.Phone
	ttl := rec.OTPExpiry.Sub(requestcontext.Now(ctx))
	if ttl <= 0 {
		return nil, fmt.Errorf("pending registration already expired")
	}

	// Claim the key first; only the claimer writes the hash.
	ok, err := s.client.SetNX(ctx, key+":lock", "1", ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("claim pending key: %w", err)
	}
	if !ok {
		existing, err := s.Get(ctx, rec.Phone)
		if err != nil {
			// Lock present but hash gone: treat as conflict without detail.
			return nil, sentinel.ErrConflict
		}
		return existing, sentinel.ErrConflict
	}

	fields := map[string]any{
		"first_name":    rec.FirstName,
		"middle_name":   rec.MiddleName,
		"last_name":     rec.LastName,
		"email":         rec.Email,
		"password_hash": rec.PasswordHash,
		"phone":         rec.Phone,
		"otp":           rec.OTPCode,
		"otp_expiry":    rec.OTPExpiry.UnixMilli(),
		"attempts":      rec.Attempts,
	}
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, fields)
	pipe.PExpire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("store pending registration: %w", err)
	}
	return &rec, nil
}

func (s *RedisStore) Get(ctx context.Context, phone string) (*registration.PendingRegistration, error) {
	fields, err := s.client.HGetAll(ctx, pendingKeyPrefix+phone).Result()
	if err != nil {
		return nil, fmt.Errorf("get pending registration: %w", err)
	}
	if len(fields) == 0 {
		return nil, sentinel.ErrNotFound
	}
	return fromFields(fields)
}

func (s *RedisStore) RecordAttempt(ctx context.Context, phone string) (*registration.PendingRegistration, error) {
	res, err := attemptScript.Run(ctx, s.client, []string{pendingKeyPrefix + phone}).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("record otp attempt: %w", err)
	}
	return fromScriptReply(res)
}

func (s *RedisStore) Remove(ctx context.Context, phone string) (*registration.PendingRegistration, error) {
	key := pendingKeyPrefix + phone
	res, err := removeScript.Run(ctx, s.client, []string{key}).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("remove pending registration: %w", err)
	}
	_ = s.client.Del(ctx, key+":lock")
	return fromScriptReply(res)
}

func (s *RedisStore) Delete(ctx context.Context, phone string) error {
	key := pendingKeyPrefix + phone
	if err := s.client.Del(ctx, key, key+":lock").Err(); err != nil {
		return fmt.Errorf("delete pending registration: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: Redis TTLs already remove expired records.
func (s *RedisStore) DeleteExpired(context.Context) (int, error) {
	return 0, nil
}

func fromFields(fields map[string]string) (*registration.PendingRegistration, error) {
	expiryMs, err := strconv.ParseInt(fields["otp_expiry"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse otp expiry: %w", err)
	}
	attempts, err := strconv.Atoi(fields["attempts"])
	if err != nil {
		return nil, fmt.Errorf("parse attempts: %w", err)
	}
	return &registration.PendingRegistration{
		FirstName:    fields["first_name"],
		MiddleName:   fields["middle_name"],
		LastName:     fields["last_name"],
		Email:        fields["email"],
		PasswordHash: fields["password_hash"],
		Phone:        fields["phone"],
		OTPCode:      fields["otp"],
		OTPExpiry:    time.UnixMilli(expiryMs),
		Attempts:     attempts,
	}, nil
}

// fromScriptReply converts the flat [field, value, ...] array HGETALL returns
// inside a Lua reply.
func fromScriptReply(res any) (*registration.PendingRegistration, error) {
	flat, ok := res.([]any)
	if !ok || len(flat)%2 != 0 {
		return nil, fmt.Errorf("unexpected script reply %T", res)
	}
	fields := make(map[string]string, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		k, _ := flat[i].(string)
		v, _ := flat[i+1].(string)
		fields[k] = v
	}
	if len(fields) == 0 {
		return nil, sentinel.ErrNotFound
	}
	return fromFields(fields)
}
