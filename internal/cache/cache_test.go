// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "page:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestPageCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Minute)

	ctx := context.Background()
	body := []byte("<html>puzzle games</html>")
	pc.Set(ctx, CategoryKey("puzzle"), body)

	got, ok := pc.Get(ctx, CategoryKey("puzzle"))
	if !ok {
		t.Fatal("Get returned miss for freshly cached page")
	}
	if string(got) != string(body) {
		t.Errorf("Get = %q, want %q", got, body)
	}
}

func TestPageCacheMiss(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Minute)

	if _, ok := pc.Get(context.Background(), CategoryKey("never-cached")); ok {
		t.Error("Get returned hit for uncached key")
	}
}

func TestPageCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Minute)

	ctx := context.Background()
	pc.Set(ctx, CategoryKey("arcade"), []byte("a"))
	pc.Set(ctx, SitemapKey(), []byte("b"))

	pc.InvalidateAll(ctx)

	if _, ok := pc.Get(ctx, CategoryKey("arcade")); ok {
		t.Error("category page survived InvalidateAll")
	}
	if _, ok := pc.Get(ctx, SitemapKey()); ok {
		t.Error("sitemap survived InvalidateAll")
	}
}

// TestNilPageCache verifies that an unconfigured cache is a safe no-op:
// every Get is a miss and Set/InvalidateAll do nothing.
func TestNilPageCache(t *testing.T) {
	var pc *PageCache

	ctx := context.Background()
	pc.Set(ctx, CategoryKey("puzzle"), []byte("x"))
	if _, ok := pc.Get(ctx, CategoryKey("puzzle")); ok {
		t.Error("nil cache returned a hit")
	}
	pc.InvalidateAll(ctx)
}
